package main

import (
	"encoding/json"
	"net/http"

	"github.com/username/goviet-ime/internal/engine"
	"github.com/username/goviet-ime/internal/hostapi"
)

type server struct {
	sessions *hostapi.Manager
}

func newServer() *server {
	return &server{sessions: hostapi.NewManager()}
}

func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}

type processKeyRequest struct {
	SessionID string `json:"session_id"`
	Key       string `json:"key"`
	Shift     bool   `json:"shift"`
	Caps      bool   `json:"caps"`
	Ctrl      bool   `json:"ctrl"`
	Alt       bool   `json:"alt"`
	Cmd       bool   `json:"cmd"`
}

type processKeyResponse struct {
	SessionID      string `json:"session_id"`
	Action         string `json:"action"`
	BackspaceCount uint8  `json:"backspace_count"`
	Chars          string `json:"chars"`
	Preedit        string `json:"preedit"`
}

var actionNames = map[engine.Action]string{
	engine.ActionNone:    "none",
	engine.ActionSend:    "send",
	engine.ActionRestore: "restore",
}

// handleProcessKey is the HTTP analogue of the D-Bus daemon's ProcessKey
// method, over the same session/engine plumbing (internal/hostapi).
func (s *server) handleProcessKey(w http.ResponseWriter, r *http.Request) {
	var req processKeyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	key, ok := parseKey(req.Key)
	if !ok {
		writeError(w, http.StatusBadRequest, "unrecognised key: "+req.Key)
		return
	}

	session := s.sessions.Get(req.SessionID)
	result := session.ProcessKey(key, req.Shift, req.Caps, req.Ctrl, req.Alt, req.Cmd)

	writeJSON(w, processKeyResponse{
		SessionID:      session.ID,
		Action:         actionNames[result.Action],
		BackspaceCount: result.BackspaceCount,
		Chars:          result.String(),
		Preedit:        session.Host.Preedit(),
	})
}

type configRequest struct {
	SessionID       string `json:"session_id"`
	Method          string `json:"method"`
	Enabled         *bool  `json:"enabled,omitempty"`
	ModernTone      *bool  `json:"modern_tone,omitempty"`
	AutocorrectMode string `json:"autocorrect_mode"`
}

type configResponse struct {
	SessionID       string `json:"session_id"`
	Method          string `json:"method"`
	Enabled         bool   `json:"enabled"`
	ModernTone      bool   `json:"modern_tone"`
	AutocorrectMode string `json:"autocorrect_mode"`
}

var methodNames = map[engine.Method]string{
	engine.MethodTelex: "telex",
	engine.MethodVNI:   "vni",
}
var methodValues = map[string]engine.Method{
	"telex": engine.MethodTelex,
	"vni":   engine.MethodVNI,
}

var autocorrectNames = map[engine.AutocorrectMode]string{
	engine.AutocorrectOff:  "off",
	engine.AutocorrectVi:   "vi",
	engine.AutocorrectEn:   "en",
	engine.AutocorrectBoth: "both",
}
var autocorrectValues = map[string]engine.AutocorrectMode{
	"off":  engine.AutocorrectOff,
	"vi":   engine.AutocorrectVi,
	"en":   engine.AutocorrectEn,
	"both": engine.AutocorrectBoth,
}

func configSnapshot(s *hostapi.Session) configResponse {
	return configResponse{
		SessionID:       s.ID,
		Method:          methodNames[s.Host.Method()],
		Enabled:         s.Host.Enabled(),
		ModernTone:      s.Host.ModernTone(),
		AutocorrectMode: autocorrectNames[s.Host.AutocorrectMode()],
	}
}

// handleConfig reads or updates a session's engine configuration. GET with
// ?session_id= returns the current settings; POST applies any fields set in
// the body.
func (s *server) handleConfig(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodGet {
		session := s.sessions.Get(r.URL.Query().Get("session_id"))
		writeJSON(w, configSnapshot(session))
		return
	}

	var req configRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	session := s.sessions.Get(req.SessionID)

	if req.Method != "" {
		m, ok := methodValues[req.Method]
		if !ok {
			writeError(w, http.StatusBadRequest, "unrecognised method: "+req.Method)
			return
		}
		session.Host.SetMethod(m)
	}
	if req.Enabled != nil {
		session.Host.SetEnabled(*req.Enabled)
	}
	if req.ModernTone != nil {
		session.Host.SetModernTone(*req.ModernTone)
	}
	if req.AutocorrectMode != "" {
		mode, ok := autocorrectValues[req.AutocorrectMode]
		if !ok {
			writeError(w, http.StatusBadRequest, "unrecognised autocorrect_mode: "+req.AutocorrectMode)
			return
		}
		session.Host.SetAutocorrectMode(mode)
	}

	writeJSON(w, configSnapshot(session))
}

func (s *server) handleVersion(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]string{"version": engine.GetVersion()})
}

func (s *server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]string{"status": "healthy"})
}
