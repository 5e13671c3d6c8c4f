package xnft

// ErrorCode enumerates the protocol errors surfaced to the executor.
type ErrorCode uint8

const (
	// AssetNotHandled rejects fungible assets presented to this transactor.
	AssetNotHandled ErrorCode = iota

	// AssetNotFound signals that the backing class or instance does not exist.
	AssetNotFound

	// AssetIdConversionFailed signals an asset id that is neither a
	// registered foreign asset nor a convertible local class.
	AssetIdConversionFailed

	// InstanceConversionFailed signals an instance locator that could not
	// be resolved to a local instance.
	InstanceConversionFailed

	// AccountIdConversionFailed signals a beneficiary/holder location that
	// could not be converted to an account.
	AccountIdConversionFailed

	// NotDepositable guards against double-crediting an instance whose
	// derivative is already active on this system.
	NotDepositable

	// NoPermission signals an operation on an instance the caller does not
	// control, including any user withdrawal of a stashed derivative.
	NoPermission

	// BadOrigin signals an unauthorized origin.
	BadOrigin

	// BadAssetId signals a versioned locator in an unsupported version.
	BadAssetId

	// AttemptToRegisterLocalAsset rejects registering a locator that
	// normalizes to this system's own namespace.
	AttemptToRegisterLocalAsset

	// AssetAlreadyRegistered rejects a second registration of a foreign asset.
	AssetAlreadyRegistered

	// FailedToTransactAsset wraps a backend failure with no specific
	// translation; the original message is preserved for diagnostics.
	FailedToTransactAsset
)

func (c ErrorCode) String() string {
	switch c {
	case AssetNotHandled:
		return "AssetNotHandled"
	case AssetNotFound:
		return "AssetNotFound"
	case AssetIdConversionFailed:
		return "AssetIdConversionFailed"
	case InstanceConversionFailed:
		return "InstanceConversionFailed"
	case AccountIdConversionFailed:
		return "AccountIdConversionFailed"
	case NotDepositable:
		return "NotDepositable"
	case NoPermission:
		return "NoPermission"
	case BadOrigin:
		return "BadOrigin"
	case BadAssetId:
		return "BadAssetId"
	case AttemptToRegisterLocalAsset:
		return "AttemptToRegisterLocalAsset"
	case AssetAlreadyRegistered:
		return "AssetAlreadyRegistered"
	case FailedToTransactAsset:
		return "FailedToTransactAsset"
	default:
		return "UnknownError"
	}
}

// Error is a typed bridge error.
type Error struct {
	Code ErrorCode
	Msg  string
}

func (e *Error) Error() string {
	if e.Msg == "" {
		return e.Code.String()
	}
	return e.Code.String() + ": " + e.Msg
}

// Is matches two bridge errors by code, so errors.Is works against the
// canonical values below regardless of the carried message.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Code == e.Code
}

var (
	ErrAssetNotHandled             = &Error{Code: AssetNotHandled}
	ErrAssetNotFound               = &Error{Code: AssetNotFound}
	ErrAssetIdConversionFailed     = &Error{Code: AssetIdConversionFailed}
	ErrInstanceConversionFailed    = &Error{Code: InstanceConversionFailed}
	ErrAccountIdConversionFailed   = &Error{Code: AccountIdConversionFailed}
	ErrNotDepositable              = &Error{Code: NotDepositable}
	ErrNoPermission                = &Error{Code: NoPermission}
	ErrBadOrigin                   = &Error{Code: BadOrigin}
	ErrBadAssetId                  = &Error{Code: BadAssetId}
	ErrAttemptToRegisterLocalAsset = &Error{Code: AttemptToRegisterLocalAsset}
	ErrAssetAlreadyRegistered      = &Error{Code: AssetAlreadyRegistered}
)

// FailedToTransact wraps a backend error message into the generic code.
func FailedToTransact(msg string) *Error {
	return &Error{Code: FailedToTransactAsset, Msg: msg}
}

// DispatchErrorConvert translates one backend error family into a bridge
// error. Convert reports false when the error is not recognized so the
// next converter in the chain is tried.
type DispatchErrorConvert interface {
	Convert(err error) (*Error, bool)
}

// ErrorConverter holds an ordered list of backend error translations.
// When none matches, the backend error is wrapped into
// FailedToTransactAsset carrying the original message.
type ErrorConverter struct {
	converts []DispatchErrorConvert
}

func NewErrorConverter(converts ...DispatchErrorConvert) *ErrorConverter {
	return &ErrorConverter{converts: converts}
}

func (c *ErrorConverter) Convert(err error) *Error {
	if err == nil {
		return nil
	}
	if e, ok := err.(*Error); ok {
		return e
	}
	for _, convert := range c.converts {
		if e, ok := convert.Convert(err); ok {
			return e
		}
	}
	return FailedToTransact(err.Error())
}
