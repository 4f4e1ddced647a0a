package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/charleslimjh/tp/internal/command"
)

// CommandRequest is the body of POST /commands.
type CommandRequest struct {
	Command string `json:"command"`
}

// CommandResponse reports the outcome of a successful command.
type CommandResponse struct {
	Feedback string `json:"feedback"`
	ShowHelp bool   `json:"show_help"`
	Exit     bool   `json:"exit"`
	HelpText string `json:"help_text,omitempty"`
}

// PostCommand handles POST /commands.
// The body carries one line of command text, exactly as typed in the shell.
func (s *Server) PostCommand(w http.ResponseWriter, r *http.Request) {
	var body CommandRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		var tooLarge *http.MaxBytesError
		switch {
		case errors.As(err, &tooLarge):
			s.writeError(w, r, err)
		case errors.Is(err, io.EOF):
			requestBody(w, "request body is required")
		default:
			requestBody(w, "request body must be JSON: "+err.Error())
		}
		return
	}
	if strings.TrimSpace(body.Command) == "" {
		requestBody(w, "command is required")
		return
	}

	res, err := s.guide.Execute(r.Context(), body.Command)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, resultToResponse(res))
}

func resultToResponse(res command.Result) CommandResponse {
	out := CommandResponse{
		Feedback: res.Feedback,
		ShowHelp: res.ShowHelp,
		Exit:     res.Exit,
	}
	if res.ShowHelp {
		out.HelpText = command.HelpText
	}
	return out
}
