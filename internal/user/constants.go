package user

// Error messages
const (
	ErrMsgEmptyFieldFmt      = "%s must not be empty: %w"
	ErrMsgNameTooLongFmt     = "name longer than %d characters: %w"
	ErrMsgPaddedNameFmt      = "name %q has leading or trailing whitespace: %w"
	ErrMsgDuplicatePlayerFmt = "player %q: %w"
	ErrMsgPlayerNotFoundFmt  = "player %q: %w"
	ErrMsgNotAdminFmt        = "player %q is not an administrator: %w"
	ErrMsgWrongPasswordFmt   = "password check failed for %q: %w"
	ErrMsgHashPasswordFailed = "failed to hash password: %w"
	ErrMsgGetPlayerFailed    = "failed to get player: %w"
	ErrMsgCreatePlayerFailed = "failed to create player: %w"
	ErrMsgSetAdminFailed     = "failed to set admin flag: %w"
	ErrMsgBeginTxFailed      = "failed to begin transaction: %w"
	ErrMsgCommitTxFailed     = "failed to commit transaction: %w"
)

// Log messages
const (
	LogMsgRegisterCalled    = "Register called"
	LogMsgPlayerRegistered  = "Player registered"
	LogMsgSignInCalled      = "SignIn called"
	LogMsgSignInFailed      = "Sign-in rejected"
	LogMsgGrantAdminCalled  = "GrantAdmin called"
	LogMsgAdminGranted      = "Admin rights granted"
	LogMsgEnsureAdminCalled = "EnsureAdmin called"
)

// Field names used in validation errors
const (
	FieldName     = "name"
	FieldPassword = "password"
	FieldTarget   = "target name"
)
