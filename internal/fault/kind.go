package fault

const moreInfoBase = "https://lantern.dev/faults/"

// Kind carries the metadata that is fixed for every Record of a given
// classification. Kinds are compared by their Type discriminator, so the
// package-level values below are the only instances callers should use.
type Kind struct {
	// Type is the stable discriminator external systems key on. It never
	// changes once published, even if the Go identifier is renamed.
	Type string
	// RetryMeaningful reports whether re-attempting the same operation
	// unchanged could plausibly succeed.
	RetryMeaningful bool
	// MoreInfoURL links operator documentation for this classification.
	MoreInfoURL string

	friendly string
}

// The taxonomy. Each value fixes its retry semantics and discriminator; new
// kinds slot in by adding a value here, nothing else changes.
var (
	// Contract marks caller or programmer misuse: malformed input, an
	// invalid call sequence, a violated precondition. Retrying the same
	// call is pointless.
	Contract = Kind{
		Type:            "lantern.contract_violation",
		RetryMeaningful: false,
		MoreInfoURL:     moreInfoBase + "contract-violation",
		friendly:        "The request violated the service contract and was rejected. An end user should never see this message; if you do, report it together with",
	}

	// InvalidArgument marks an internal argument-validation failure, such
	// as a formatting call that received nothing to format.
	InvalidArgument = Kind{
		Type:            "lantern.invalid_argument",
		RetryMeaningful: false,
		MoreInfoURL:     moreInfoBase + "invalid-argument",
		friendly:        "An internal call received arguments that violate its contract. Report this to the service owners together with",
	}

	// Configuration marks a facility consulted before the host application
	// configured it.
	Configuration = Kind{
		Type:            "lantern.configuration",
		RetryMeaningful: false,
		MoreInfoURL:     moreInfoBase + "configuration",
		friendly:        "The service is missing required configuration. Report this to whoever operates the service together with",
	}

	// NotFound marks a lookup for something that does not exist.
	NotFound = Kind{
		Type:            "lantern.not_found",
		RetryMeaningful: false,
		MoreInfoURL:     moreInfoBase + "not-found",
		friendly:        "The requested resource does not exist. If you believe it should, report",
	}

	// Conflict marks an update that lost a race with a concurrent writer.
	// Re-reading and retrying can succeed.
	Conflict = Kind{
		Type:            "lantern.conflict",
		RetryMeaningful: true,
		MoreInfoURL:     moreInfoBase + "conflict",
		friendly:        "The operation conflicted with a concurrent change and can be retried. If the conflict persists, report",
	}

	// Unauthorized marks a caller lacking credentials or permissions.
	Unauthorized = Kind{
		Type:            "lantern.unauthorized",
		RetryMeaningful: false,
		MoreInfoURL:     moreInfoBase + "unauthorized",
		friendly:        "The caller is not authorized for this operation. If access should be granted, report",
	}

	// Timeout marks an operation that ran out of time; a later retry may
	// find a healthier dependency.
	Timeout = Kind{
		Type:            "lantern.timeout",
		RetryMeaningful: true,
		MoreInfoURL:     moreInfoBase + "timeout",
		friendly:        "The operation timed out and may succeed if retried. If timeouts persist, report",
	}

	// Transient marks a failure believed to be temporary.
	Transient = Kind{
		Type:            "lantern.transient",
		RetryMeaningful: true,
		MoreInfoURL:     moreInfoBase + "transient",
		friendly:        "The operation hit a temporary failure and may succeed if retried. If it keeps failing, report",
	}

	// Internal marks a defect inside the service itself.
	Internal = Kind{
		Type:            "lantern.internal",
		RetryMeaningful: false,
		MoreInfoURL:     moreInfoBase + "internal",
		friendly:        "The service hit an internal error. Report this to the service owners together with",
	}
)

// Kinds returns the full taxonomy in a stable order, for registries and
// operator tooling.
func Kinds() []Kind {
	return []Kind{
		Contract,
		InvalidArgument,
		Configuration,
		NotFound,
		Conflict,
		Unauthorized,
		Timeout,
		Transient,
		Internal,
	}
}
