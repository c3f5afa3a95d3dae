package handlers

import (
	"net/http"

	pkgerrors "portfolio/pkg/errors"
)

// respondFailure passes client errors through unchanged and reports anything
// else as a 500 carrying fallback, so store details never reach the caller.
func respondFailure(errs *pkgerrors.ErrorHandler, w http.ResponseWriter, r *http.Request, err error, fallback string) {
	if appErr := pkgerrors.GetAppError(err); appErr != nil && appErr.HTTPStatus > 0 && appErr.HTTPStatus < 500 {
		errs.Handle(w, r, err)
		return
	}
	errs.Handle(w, r, pkgerrors.NewStorageError(fallback, err))
}
