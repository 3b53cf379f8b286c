package http

import (
	"net/http"

	"github.com/secmon-lab/kairos/pkg/domain/model"
)

func (s *Server) processVoiceHandler(w http.ResponseWriter, r *http.Request) {
	r = detachedContext(r)
	ctx := r.Context()

	var input model.VoiceInput
	if err := decodeJSON(w, r, &input); err != nil {
		handleError(ctx, w, err)
		return
	}

	result, err := s.voice.ProcessVoice(ctx, &input)
	if err != nil {
		handleError(ctx, w, err)
		return
	}

	writeJSON(ctx, w, result)
}
