// Package authz evaluates who may enter a protected section of the API.
// It is deliberately decoupled from HTTP: callers get back an allow/deny
// decision with a reason code and decide themselves how to answer the
// request.
package authz

import "github.com/google/uuid"

type AccountKind string

const (
	KindCreator AccountKind = "creator"
	KindUser    AccountKind = "user"
	// KindAny accepts either account kind as long as the caller is
	// authenticated.
	KindAny AccountKind = ""
)

type Identity struct {
	AccountID          uuid.UUID
	Kind               AccountKind
	NeedsTypeSelection bool
	Authenticated      bool
}

type Requirement struct {
	Kind AccountKind
}

type Reason string

const (
	ReasonOK                 Reason = "ok"
	ReasonUnauthenticated    Reason = "unauthenticated"
	ReasonWrongKind          Reason = "wrong_kind"
	ReasonNeedsTypeSelection Reason = "needs_type_selection"
)

type Decision struct {
	Allow  bool
	Reason Reason
}

func Evaluate(id Identity, req Requirement) Decision {
	if !id.Authenticated {
		return Decision{Allow: false, Reason: ReasonUnauthenticated}
	}
	if id.NeedsTypeSelection {
		return Decision{Allow: false, Reason: ReasonNeedsTypeSelection}
	}
	if req.Kind != KindAny && id.Kind != req.Kind {
		return Decision{Allow: false, Reason: ReasonWrongKind}
	}
	return Decision{Allow: true, Reason: ReasonOK}
}
