package handlers

import (
	"log"
	"net/http"
	"sync"

	"cloud.google.com/go/firestore"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"panpath-guardian/chat"
	"panpath-guardian/db"
)

// ChatRegistry keeps one assistant transcript per session.
type ChatRegistry struct {
	mu        sync.Mutex
	sessions  map[string]*chat.Assistant
	completer chat.Completer
	store     *firestore.Client
}

// NewChatRegistry builds a registry. Both the completer and the Firestore
// client may be nil; replies degrade to canned responses and transcripts
// stay in memory.
func NewChatRegistry(completer chat.Completer, store *firestore.Client) *ChatRegistry {
	return &ChatRegistry{
		sessions:  make(map[string]*chat.Assistant),
		completer: completer,
		store:     store,
	}
}

func (r *ChatRegistry) session(id string) *chat.Assistant {
	r.mu.Lock()
	defer r.mu.Unlock()
	if a, ok := r.sessions[id]; ok {
		return a
	}
	a := chat.NewAssistant(r.completer)
	r.sessions[id] = a
	return a
}

// SendMessage appends a user message to its session and returns the
// assistant reply. An omitted session ID starts a new conversation.
func (r *ChatRegistry) SendMessage(c *gin.Context) {
	var req struct {
		SessionID string `json:"sessionId"`
		Message   string `json:"message"`
		Context   string `json:"context"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Message == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "message is required"})
		return
	}
	if req.SessionID == "" {
		req.SessionID = uuid.NewString()
	}

	assistant := r.session(req.SessionID)
	reply := assistant.Send(c.Request.Context(), req.Message, req.Context)

	// Transcript persistence is best effort; the reply already happened.
	if err := db.SaveTranscript(r.store, req.SessionID, assistant.Transcript()); err != nil {
		log.Printf("Warning: failed to persist transcript %s: %v", req.SessionID, err)
	}

	c.JSON(http.StatusOK, gin.H{
		"sessionId": req.SessionID,
		"message":   reply,
	})
}

// GetTranscript returns the full transcript for a session.
func (r *ChatRegistry) GetTranscript(c *gin.Context) {
	id := c.Param("sessionId")

	r.mu.Lock()
	assistant, ok := r.sessions[id]
	r.mu.Unlock()
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown session: " + id})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"sessionId": id,
		"messages":  assistant.Transcript(),
	})
}
