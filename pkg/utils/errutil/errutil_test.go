package errutil_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/kairos/pkg/utils/errutil"
)

func TestHandleHTTP(t *testing.T) {
	t.Run("writes error text as detail", func(t *testing.T) {
		rec := httptest.NewRecorder()
		err := goerr.Wrap(goerr.New("connection refused"), "failed to insert appointment", goerr.V("user_id", "u1"))

		errutil.HandleHTTP(context.Background(), rec, err, http.StatusInternalServerError)

		gt.Value(t, rec.Code).Equal(http.StatusInternalServerError)
		gt.Value(t, rec.Header().Get("Content-Type")).Equal("application/json")

		var resp errutil.ErrorResponse
		gt.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp)).Required()
		gt.Value(t, resp.Detail).Equal(err.Error())
		gt.String(t, resp.Detail).Contains("connection refused")
	})

	t.Run("nil error writes nothing", func(t *testing.T) {
		rec := httptest.NewRecorder()
		errutil.HandleHTTP(context.Background(), rec, nil, http.StatusInternalServerError)
		gt.Value(t, rec.Body.Len()).Equal(0)
	})
}
