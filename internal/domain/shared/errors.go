package shared

// DomainError represents a domain-level error
type DomainError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Error implements the error interface
func (e *DomainError) Error() string {
	return e.Message
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// Common domain errors. Callers classify failures with errors.Is against
// these sentinels; lower layers attach detail via fmt.Errorf("%w: ...").
var (
	// ErrValidation marks a business-rule violation, e.g. a transaction
	// debiting and crediting the same account or a non-positive amount.
	ErrValidation = NewDomainError("VALIDATION", "Business rule violated")
	// ErrConfiguration marks an unknown table identifier or an unknown
	// strategy discriminator.
	ErrConfiguration = NewDomainError("CONFIGURATION", "Unknown table or strategy")
	// ErrNotFound marks a missing resource: an absent entity, a missing
	// import file, or a table absent from an import document.
	ErrNotFound = NewDomainError("NOT_FOUND", "Resource not found")
	// ErrStorage wraps a query or command failure from the backing store.
	ErrStorage = NewDomainError("STORAGE", "Storage operation failed")
	// ErrSerialization marks a malformed export document or an unexpected
	// value shape encountered during decode.
	ErrSerialization = NewDomainError("SERIALIZATION", "Malformed document")
)
