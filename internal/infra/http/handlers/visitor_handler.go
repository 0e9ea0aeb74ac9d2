package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/xavierca1/expo-visitors/internal/entity"
	"github.com/xavierca1/expo-visitors/internal/infra/http/middleware"
	"github.com/xavierca1/expo-visitors/internal/usecase"
)

const suggestionLimit = 10

type VisitorHandler struct {
	RegisterUC  *usecase.RegisterVisitorUseCase
	Visitors    entity.VisitorRepositoryInterface
	Leads       entity.LeadRepositoryInterface
	rateLimiter *RateLimiter
}

func NewVisitorHandler(
	registerUC *usecase.RegisterVisitorUseCase,
	visitors entity.VisitorRepositoryInterface,
	leads entity.LeadRepositoryInterface,
) *VisitorHandler {
	return &VisitorHandler{
		RegisterUC:  registerUC,
		Visitors:    visitors,
		Leads:       leads,
		rateLimiter: NewRateLimiter(30, time.Minute), // 30 req/min por IP
	}
}

type checkPhoneResponse struct {
	Visitor *entity.Visitor `json:"visitor"`
	Exists  bool            `json:"exists"`
}

// HandleCheckPhone (GET /visitors/check-phone/{phone})
// A busca nunca derruba o formulário: indisponibilidade do banco degrada
// para "não encontrado" em vez de propagar o erro.
func (h *VisitorHandler) HandleCheckPhone(w http.ResponseWriter, r *http.Request) {
	phone := entity.NormalizePhone(chi.URLParam(r, "phone"))
	if phone == "" {
		writeError(w, http.StatusBadRequest, "VALIDATION_ERROR", "phone is required")
		return
	}

	visitor, err := h.Visitors.FindByPhone(r.Context(), phone)
	if err != nil {
		if err != entity.ErrVisitorNotFound {
			log.Printf("⚠️ check-phone degradado para not-found: %v", err)
		}
		writeJSON(w, http.StatusOK, checkPhoneResponse{Visitor: nil, Exists: false})
		return
	}

	writeJSON(w, http.StatusOK, checkPhoneResponse{Visitor: visitor, Exists: true})
}

type suggestionsResponse struct {
	Suggestions []string `json:"suggestions"`
	Count       int      `json:"count"`
	Query       string   `json:"query"`
}

// HandlePhoneSuggestions (GET /visitors/phone-suggestions/{partialPhone})
// Mantém o formato legado "telefone(nome)" no fio: o app faz parse com
// ^(\d+)\((.*)\)$. Internamente tudo é PhoneSuggestion estruturado.
func (h *VisitorHandler) HandlePhoneSuggestions(w http.ResponseWriter, r *http.Request) {
	query := entity.NormalizePhone(chi.URLParam(r, "partialPhone"))
	middleware.RecordSuggestionQuery()

	if query == "" {
		writeJSON(w, http.StatusOK, suggestionsResponse{Suggestions: []string{}, Query: query})
		return
	}

	matches, err := h.Visitors.SearchByPhonePrefix(r.Context(), query, suggestionLimit)
	if err != nil {
		// Busca é side-effect-free: falha degrada para lista vazia.
		log.Printf("⚠️ phone-suggestions degradado para vazio: %v", err)
		writeJSON(w, http.StatusOK, suggestionsResponse{Suggestions: []string{}, Query: query})
		return
	}

	ranked := entity.RankSuggestions(query, matches)

	suggestions := make([]string, 0, len(ranked))
	for _, s := range ranked {
		suggestions = append(suggestions, s.LegacyString())
	}

	writeJSON(w, http.StatusOK, suggestionsResponse{
		Suggestions: suggestions,
		Count:       len(suggestions),
		Query:       query,
	})
}

type existsResponse struct {
	Exists       bool   `json:"exists"`
	ExactMatch   bool   `json:"exact_match"`
	Count        int    `json:"count"`
	PhoneChecked string `json:"phone_checked"`
}

// HandleExists (GET /visitors/exists/{phone})
func (h *VisitorHandler) HandleExists(w http.ResponseWriter, r *http.Request) {
	phone := entity.NormalizePhone(chi.URLParam(r, "phone"))

	count, err := h.Visitors.CountByPhone(r.Context(), phone)
	if err != nil {
		log.Printf("⚠️ exists degradado para false: %v", err)
		count = 0
	}

	writeJSON(w, http.StatusOK, existsResponse{
		Exists:       count > 0,
		ExactMatch:   count > 0,
		Count:        count,
		PhoneChecked: phone,
	})
}

// HandleRegister (POST /visitors)
// 201 com o resultado em duas fases (visitor + warning do lead),
// 409 quando telefone/email já existem, 400 em campo obrigatório faltando.
func (h *VisitorHandler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	clientIP := getClientIP(r)
	if !h.rateLimiter.Allow(clientIP) {
		writeError(w, http.StatusTooManyRequests, "RATE_LIMITED", "Too many requests. Please try again later.")
		return
	}

	var input usecase.RegisterVisitorInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_JSON", "invalid request body")
		return
	}

	output, err := h.RegisterUC.Execute(r.Context(), input)
	if err != nil {
		switch e := err.(type) {
		case *usecase.DomainError:
			writeError(w, http.StatusBadRequest, e.Code, e.Message)
		case *usecase.ConflictError:
			middleware.RecordVisitorConflict()
			writeError(w, http.StatusConflict, e.Code, e.Message)
		default:
			// Falha inesperada do banco: loga com contexto e responde
			// genérico, sem vazar detalhe interno.
			log.Printf("❌ Erro no registro de visitor: %v", err)
			writeError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error")
		}
		return
	}

	middleware.RecordVisitorRegistered()
	if output.LeadWarning != "" {
		middleware.RecordLeadAttached("warning")
	} else {
		middleware.RecordLeadAttached("ok")
	}

	writeJSON(w, http.StatusCreated, output)
}

// HandleGetByID (GET /visitors/{id})
func (h *VisitorHandler) HandleGetByID(w http.ResponseWriter, r *http.Request) {
	visitor, err := h.Visitors.FindByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		if err == entity.ErrVisitorNotFound {
			writeError(w, http.StatusNotFound, "NOT_FOUND", "visitor not found")
			return
		}
		log.Printf("❌ Erro ao buscar visitor: %v", err)
		writeError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error")
		return
	}

	writeJSON(w, http.StatusOK, map[string]*entity.Visitor{"visitor": visitor})
}

// HandleListLeads (GET /visitors/{id}/leads)
func (h *VisitorHandler) HandleListLeads(w http.ResponseWriter, r *http.Request) {
	leads, err := h.Leads.FindByVisitorID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		log.Printf("❌ Erro ao listar leads: %v", err)
		writeError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error")
		return
	}

	if leads == nil {
		leads = []*entity.Lead{}
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"leads": leads,
		"count": len(leads),
	})
}
