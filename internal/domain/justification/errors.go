package justification

import "errors"

var (
	ErrTypeNotFound          = errors.New("justification type not found")
	ErrTypeInUse             = errors.New("justification type is referenced by existing justifications")
	ErrJustificationNotFound = errors.New("justification not found")
	ErrAlreadyProcessed      = errors.New("justification has already been approved or rejected")
	ErrNotApplicable         = errors.New("justification type does not apply to this punch")
	ErrSelfApproval          = errors.New("cannot approve your own justification")
)
