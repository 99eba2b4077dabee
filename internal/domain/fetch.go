package domain

import "github.com/paramveer-prakash/career-sub001/internal/model"

// FetchStatus classifies the outcome of a resume lookup.
type FetchStatus int

const (
	Found FetchStatus = iota
	NotFound
	// Unreachable covers an unconfigured source, transport failures, timeouts,
	// non-auth error statuses and payloads that fail validation.
	Unreachable
	// Unauthorized means the backend answered 401 or 403.
	Unauthorized
)

func (s FetchStatus) String() string {
	switch s {
	case Found:
		return "found"
	case NotFound:
		return "not_found"
	case Unreachable:
		return "unreachable"
	case Unauthorized:
		return "unauthorized"
	default:
		return "unknown"
	}
}

// FetchResult is what a resume source reports back. The caller decides the
// fallback policy; sources never substitute data themselves.
type FetchResult struct {
	Status     FetchStatus
	Resume     *model.Resume
	StatusCode int
	Err        error
}

func FoundResult(r *model.Resume) FetchResult {
	return FetchResult{Status: Found, Resume: r}
}
