package conversations

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/fellipesaraiva88/aupet-ai-connect-sub003/internal/domain/customers"
	"github.com/fellipesaraiva88/aupet-ai-connect-sub003/internal/middleware"
)

func RegisterRoutes(r chi.Router, svc *Service, customersSvc *customers.Service) {
	r.Route("/conversations", func(cr chi.Router) {
		cr.Get("/", listConversationsHandler(svc))
		cr.Get("/{conversationID}/messages", listMessagesHandler(svc))
		cr.Post("/{conversationID}/messages", sendMessageHandler(svc))
		cr.Post("/{conversationID}/resolve", resolveHandler(svc))
	})

	// Webhook de entrada do gateway de WhatsApp.
	r.Post("/webhooks/whatsapp", inboundWebhookHandler(svc, customersSvc))
}

type conversationResponse struct {
	ID            string    `json:"id"`
	CustomerID    string    `json:"customer_id"`
	Channel       string    `json:"channel"`
	Status        string    `json:"status"`
	LastMessageAt time.Time `json:"last_message_at"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type messageResponse struct {
	ID             string    `json:"id"`
	ConversationID string    `json:"conversation_id"`
	Direction      string    `json:"direction"`
	Body           string    `json:"body"`
	Status         string    `json:"status"`
	ActorID        string    `json:"actor_id,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

type sendMessageRequest struct {
	Body string `json:"body"`
}

// inboundWebhookRequest é o payload que o gateway posta quando chega
// mensagem do tutor. O remetente vem identificado pelo telefone.
type inboundWebhookRequest struct {
	Phone string `json:"phone"`
	Body  string `json:"body"`
}

// listConversationsHandler godoc
// @Summary Listar conversas do inbox
// @Tags conversations
// @Produce json
// @Param status query string false "Filtrar por status (open, resolved)"
// @Param limit query int false "Máximo de conversas (1-200, default 50)"
// @Success 200 {array} conversationResponse
// @Router /conversations [get]
func listConversationsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filter := ListFilter{Status: ConversationStatus(r.URL.Query().Get("status"))}
		if v := r.URL.Query().Get("limit"); v != "" {
			if n, err := strconv.Atoi(v); err == nil {
				filter.Limit = n
			}
		}

		items, err := svc.ListConversations(r.Context(), filter)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		out := make([]conversationResponse, 0, len(items))
		for _, c := range items {
			out = append(out, toConversationResponse(c))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

// listMessagesHandler godoc
// @Summary Mensagens de uma conversa
// @Tags conversations
// @Produce json
// @Param conversationID path string true "ID da conversa"
// @Param limit query int false "Máximo de mensagens (default 100)"
// @Success 200 {array} messageResponse
// @Failure 404 {string} string "conversation not found"
// @Router /conversations/{conversationID}/messages [get]
func listMessagesHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit := 0
		if v := r.URL.Query().Get("limit"); v != "" {
			if n, err := strconv.Atoi(v); err == nil {
				limit = n
			}
		}

		items, err := svc.ListMessages(r.Context(), chi.URLParam(r, "conversationID"), limit)
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				http.Error(w, "conversation not found", http.StatusNotFound)
				return
			}
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		out := make([]messageResponse, 0, len(items))
		for _, m := range items {
			out = append(out, toMessageResponse(m))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

// sendMessageHandler godoc
// @Summary Enviar mensagem ao tutor
// @Description Grava a mensagem como pending e tenta o gateway. Em falha a mensagem fica no histórico como failed e a resposta é 502.
// @Tags conversations
// @Accept json
// @Produce json
// @Param conversationID path string true "ID da conversa"
// @Param payload body sendMessageRequest true "Corpo da mensagem"
// @Success 201 {object} messageResponse
// @Failure 400 {string} string "invalid json / invalid input"
// @Failure 404 {string} string "conversation not found"
// @Failure 502 {object} messageResponse "mensagem gravada como failed"
// @Router /conversations/{conversationID}/messages [post]
func sendMessageHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req sendMessageRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		var actorID string
		if claims, ok := middleware.GetClaims(r.Context()); ok {
			actorID = claims.UserID
		}

		m, err := svc.Send(r.Context(), chi.URLParam(r, "conversationID"), actorID, req.Body)
		if err != nil {
			switch {
			case errors.Is(err, ErrNotFound):
				http.Error(w, "conversation not found", http.StatusNotFound)
			case errors.Is(err, ErrInvalidInput):
				http.Error(w, err.Error(), http.StatusBadRequest)
			case errors.Is(err, ErrSendFailed):
				// A mensagem existe no histórico como failed.
				writeJSON(w, http.StatusBadGateway, toMessageResponse(m))
			default:
				http.Error(w, "internal error", http.StatusInternalServerError)
			}
			return
		}

		writeJSON(w, http.StatusCreated, toMessageResponse(m))
	}
}

// resolveHandler godoc
// @Summary Resolver conversa
// @Description Idempotente: resolver de novo devolve a conversa como está.
// @Tags conversations
// @Produce json
// @Param conversationID path string true "ID da conversa"
// @Success 200 {object} conversationResponse
// @Failure 404 {string} string "conversation not found"
// @Router /conversations/{conversationID}/resolve [post]
func resolveHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c, err := svc.Resolve(r.Context(), chi.URLParam(r, "conversationID"))
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				http.Error(w, "conversation not found", http.StatusNotFound)
				return
			}
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, toConversationResponse(c))
	}
}

// inboundWebhookHandler godoc
// @Summary Webhook de mensagem recebida (WhatsApp)
// @Description O gateway posta {phone, body}; o tutor é resolvido pelo telefone normalizado. Telefone desconhecido devolve 404.
// @Tags conversations
// @Accept json
// @Produce json
// @Param payload body inboundWebhookRequest true "Mensagem recebida"
// @Success 201 {object} messageResponse
// @Failure 400 {string} string "invalid json / invalid input"
// @Failure 404 {string} string "unknown sender"
// @Router /webhooks/whatsapp [post]
func inboundWebhookHandler(svc *Service, customersSvc *customers.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req inboundWebhookRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		phone := customers.NormalizePhone(req.Phone)
		if phone == "" {
			http.Error(w, "invalid input", http.StatusBadRequest)
			return
		}

		// Resolve o tutor por igualdade exata do telefone canônico.
		sender, err := customersSvc.GetByPhone(r.Context(), phone)
		if err != nil {
			http.Error(w, "unknown sender", http.StatusNotFound)
			return
		}

		m, err := svc.RecordInbound(r.Context(), sender.ID, req.Body)
		if err != nil {
			if errors.Is(err, ErrInvalidInput) {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusCreated, toMessageResponse(m))
	}
}

func toConversationResponse(c Conversation) conversationResponse {
	return conversationResponse{
		ID:            c.ID,
		CustomerID:    c.CustomerID,
		Channel:       string(c.Channel),
		Status:        string(c.Status),
		LastMessageAt: c.LastMessageAt,
		CreatedAt:     c.CreatedAt,
		UpdatedAt:     c.UpdatedAt,
	}
}

func toMessageResponse(m Message) messageResponse {
	return messageResponse{
		ID:             m.ID,
		ConversationID: m.ConversationID,
		Direction:      string(m.Direction),
		Body:           m.Body,
		Status:         string(m.Status),
		ActorID:        m.ActorID,
		CreatedAt:      m.CreatedAt,
	}
}

// writeJSON é duplicado de propósito nos handlers de cada módulo
// para não criar um pacote de helpers compartilhado cedo demais.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
