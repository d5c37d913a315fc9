package match

// MatchError is a custom error type for match service errors
type MatchError string

// Error implements the error interface
func (e MatchError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrNilConfig        MatchError = "config cannot be nil"
	ErrNilGameRepo      MatchError = "game repository cannot be nil"
	ErrNilSessionRepo   MatchError = "session repository cannot be nil"
	ErrNilShuffler      MatchError = "shuffler cannot be nil"
	ErrNilClock         MatchError = "clock cannot be nil"
	ErrNilUUIDGenerator MatchError = "UUID generator cannot be nil"

	ErrInvalidMode  MatchError = "invalid mode"
	ErrInvalidToken MatchError = "invalid player token"
	ErrGameNotFound MatchError = "game not found"
)
