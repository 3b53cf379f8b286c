package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/kairos/pkg/domain/model"
	"github.com/secmon-lab/kairos/pkg/utils/errutil"
	"github.com/secmon-lab/kairos/pkg/utils/safe"
)

// maxBodySize limits request bodies to 1 MiB
const maxBodySize = 1 << 20

func decodeJSON(w http.ResponseWriter, r *http.Request, v any) error {
	decoder := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodySize))
	if err := decoder.Decode(v); err != nil {
		return goerr.Wrap(model.ErrInvalidRequest, "failed to decode request body", goerr.V("cause", err.Error()))
	}
	return nil
}

func writeJSON(ctx context.Context, w http.ResponseWriter, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		errutil.HandleHTTP(ctx, w, goerr.Wrap(err, "failed to marshal response"), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	safe.Write(ctx, w, data)
}

// handleError maps invalid input to 422 and everything else to 500
func handleError(ctx context.Context, w http.ResponseWriter, err error) {
	if errors.Is(err, model.ErrInvalidRequest) {
		errutil.HandleHTTP(ctx, w, err, http.StatusUnprocessableEntity)
		return
	}
	errutil.HandleHTTP(ctx, w, err, http.StatusInternalServerError)
}
