package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/xavierca1/expo-visitors/internal/entity"
	"github.com/xavierca1/expo-visitors/internal/infra/auth"
	"github.com/xavierca1/expo-visitors/internal/usecase"
)

// O core de visitors só consome {id, company_id} daqui: auth é colaborador,
// não domínio.
type UserHandler struct {
	Employees entity.EmployeeRepositoryInterface
	Companies entity.CompanyRepositoryInterface
	Tokens    *auth.TokenManager
}

func NewUserHandler(
	employees entity.EmployeeRepositoryInterface,
	companies entity.CompanyRepositoryInterface,
	tokens *auth.TokenManager,
) *UserHandler {
	return &UserHandler{
		Employees: employees,
		Companies: companies,
		Tokens:    tokens,
	}
}

type employeeResponse struct {
	Message     string           `json:"message"`
	User        *entity.Employee `json:"user"`
	CompanyName string           `json:"company_name,omitempty"`
	Token       string           `json:"token,omitempty"`
}

// HandleRegister (POST /users/register)
// Cadastro exige um company_code de uma company ativa.
func (h *UserHandler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	var input usecase.RegisterEmployeeInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_JSON", "invalid request body")
		return
	}

	if validationErrors := usecase.ValidateRegisterEmployeeInput(input); len(validationErrors) > 0 {
		writeError(w, http.StatusBadRequest, "VALIDATION_ERROR", validationErrors[0].Error())
		return
	}

	ctx := r.Context()

	exists, err := h.Employees.EmailExists(ctx, input.Email)
	if err != nil {
		log.Printf("❌ Erro ao checar email existente: %v", err)
		writeError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error")
		return
	}
	if exists {
		writeError(w, http.StatusBadRequest, "EMAIL_ALREADY_EXISTS", "User with this email already exists")
		return
	}

	company, err := h.Companies.FindActiveByCode(ctx, input.CompanyCode)
	if err != nil {
		if errors.Is(err, entity.ErrInvalidCompanyCode) {
			writeError(w, http.StatusBadRequest, "INVALID_COMPANY_CODE", "Invalid company code")
			return
		}
		log.Printf("❌ Erro ao validar company code: %v", err)
		writeError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("❌ Erro ao gerar hash de senha: %v", err)
		writeError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error")
		return
	}

	employee, err := entity.NewEmployee(input.FullName, input.Email, input.Phone, string(hash), input.Role, company.ID)
	if err != nil {
		writeError(w, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	if err := h.Employees.Create(ctx, employee); err != nil {
		if errors.Is(err, entity.ErrEmployeeEmailExists) {
			writeError(w, http.StatusBadRequest, "EMAIL_ALREADY_EXISTS", "User with this email already exists")
			return
		}
		log.Printf("❌ Erro ao criar employee: %v", err)
		writeError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error")
		return
	}

	writeJSON(w, http.StatusCreated, employeeResponse{
		Message:     "User registered successfully",
		User:        employee,
		CompanyName: company.Name,
	})
}

type loginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// HandleLogin (POST /users/login)
func (h *UserHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var input loginInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_JSON", "invalid request body")
		return
	}

	if input.Email == "" || input.Password == "" {
		writeError(w, http.StatusBadRequest, "VALIDATION_ERROR", "Email and password are required")
		return
	}

	employee, err := h.Employees.FindActiveByEmail(r.Context(), input.Email)
	if err != nil {
		if errors.Is(err, entity.ErrEmployeeNotFound) {
			writeError(w, http.StatusUnauthorized, "INVALID_CREDENTIALS", "Invalid email or password")
			return
		}
		log.Printf("❌ Erro no login: %v", err)
		writeError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(employee.PasswordHash), []byte(input.Password)); err != nil {
		writeError(w, http.StatusUnauthorized, "INVALID_CREDENTIALS", "Invalid email or password")
		return
	}

	token, err := h.Tokens.Generate(employee)
	if err != nil {
		log.Printf("❌ Erro ao gerar token: %v", err)
		writeError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error")
		return
	}

	writeJSON(w, http.StatusOK, employeeResponse{
		Message: "Login successful",
		User:    employee,
		Token:   token,
	})
}

// HandleGetByID (GET /users/{id})
func (h *UserHandler) HandleGetByID(w http.ResponseWriter, r *http.Request) {
	employee, err := h.Employees.FindByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, entity.ErrEmployeeNotFound) {
			writeError(w, http.StatusNotFound, "NOT_FOUND", "User not found")
			return
		}
		log.Printf("❌ Erro ao buscar user: %v", err)
		writeError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error")
		return
	}

	writeJSON(w, http.StatusOK, map[string]*entity.Employee{"user": employee})
}
