package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/gorilla/mux"

	"profilecoach/core"
	"profilecoach/models/api"
	"profilecoach/usecases/chat"
)

// ChatHTTPHandler exposes the chat workflow over HTTP for the web UI
type ChatHTTPHandler struct {
	chatUseCase *chat.ChatUseCase
}

func NewChatHTTPHandler(chatUseCase *chat.ChatUseCase) *ChatHTTPHandler {
	return &ChatHTTPHandler{
		chatUseCase: chatUseCase,
	}
}

func (h *ChatHTTPHandler) HandleChat(w http.ResponseWriter, r *http.Request) {
	log.Printf("💬 Chat request received from %s", r.RemoteAddr)

	var req api.ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("❌ Failed to decode chat request: %v", err)
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if req.Query == "" {
		http.Error(w, "query is required", http.StatusBadRequest)
		return
	}

	// A session id is minted on first contact and echoed back so the UI can
	// keep the conversation going
	sessionID := req.SessionID
	if sessionID == "" {
		sessionID = core.NewID("sess")
		log.Printf("📋 Minted new session ID: %s", sessionID)
	}

	response := h.chatUseCase.ProcessQuery(r.Context(), req.ProfileURL, req.Query, sessionID)

	h.writeJSONResponse(w, http.StatusOK, api.ChatResponse{
		Response:  response,
		SessionID: sessionID,
	})
}

func (h *ChatHTTPHandler) HandleLoadProfile(w http.ResponseWriter, r *http.Request) {
	log.Printf("🔍 Load profile request received from %s", r.RemoteAddr)

	var req api.LoadProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("❌ Failed to decode load profile request: %v", err)
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if req.ProfileURL == "" {
		http.Error(w, "profile_url is required", http.StatusBadRequest)
		return
	}

	sessionID := req.SessionID
	if sessionID == "" {
		sessionID = core.NewID("sess")
		log.Printf("📋 Minted new session ID: %s", sessionID)
	}

	message, err := h.chatUseCase.LoadProfile(r.Context(), req.ProfileURL, sessionID)
	if err != nil {
		log.Printf("❌ Failed to load profile: %v", err)
		http.Error(w, "failed to load profile", http.StatusBadGateway)
		return
	}

	h.writeJSONResponse(w, http.StatusOK, api.LoadProfileResponse{
		Message:   message,
		SessionID: sessionID,
	})
}

func (h *ChatHTTPHandler) HandleDeleteSession(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	sessionID := vars["id"]
	log.Printf("🧹 Delete session request received for: %s", sessionID)

	if sessionID == "" {
		http.Error(w, "session id is required", http.StatusBadRequest)
		return
	}

	h.chatUseCase.ClearSession(sessionID)
	w.WriteHeader(http.StatusNoContent)
}

func (h *ChatHTTPHandler) HandleGetSessionHistory(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	sessionID := vars["id"]
	log.Printf("📋 Session history request received for: %s", sessionID)

	if sessionID == "" {
		http.Error(w, "session id is required", http.StatusBadRequest)
		return
	}

	history, err := h.chatUseCase.SessionHistory(sessionID)
	if err != nil {
		log.Printf("❌ Failed to get session history: %v", err)
		http.Error(w, "failed to get session history", http.StatusInternalServerError)
		return
	}

	h.writeJSONResponse(w, http.StatusOK, api.HistoryResponse{
		SessionID: sessionID,
		Turns:     api.DomainHistoryToAPITurns(history),
	})
}

func (h *ChatHTTPHandler) HandleGetSessionUsage(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	sessionID := vars["id"]
	log.Printf("💰 Session usage request received for: %s", sessionID)

	if sessionID == "" {
		http.Error(w, "session id is required", http.StatusBadRequest)
		return
	}

	snapshot, err := h.chatUseCase.Usage(sessionID)
	if err != nil {
		log.Printf("❌ Failed to get session usage: %v", err)
		http.Error(w, "failed to get session usage", http.StatusInternalServerError)
		return
	}

	h.writeJSONResponse(w, http.StatusOK, api.UsageResponse{
		SessionID:        sessionID,
		PromptTokens:     snapshot.PromptTokens,
		CompletionTokens: snapshot.CompletionTokens,
		EstimatedCost:    snapshot.EstimatedCost.String(),
	})
}

func (h *ChatHTTPHandler) writeJSONResponse(w http.ResponseWriter, statusCode int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("❌ Failed to encode JSON response: %v", err)
	}
}

// SetupEndpoints registers all chat API routes on the router
func (h *ChatHTTPHandler) SetupEndpoints(router *mux.Router) {
	router.HandleFunc("/api/chat", h.HandleChat).Methods("POST")
	router.HandleFunc("/api/profile/load", h.HandleLoadProfile).Methods("POST")
	router.HandleFunc("/api/sessions/{id}", h.HandleDeleteSession).Methods("DELETE")
	router.HandleFunc("/api/sessions/{id}/history", h.HandleGetSessionHistory).Methods("GET")
	router.HandleFunc("/api/sessions/{id}/usage", h.HandleGetSessionUsage).Methods("GET")
}
