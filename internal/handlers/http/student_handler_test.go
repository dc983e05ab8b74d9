package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"

	"github.com/gin-gonic/gin"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/fitcore/users-service/internal/domain/entities"
	"github.com/fitcore/users-service/internal/domain/errors"
	"github.com/fitcore/users-service/internal/domain/ports"
	"github.com/fitcore/users-service/internal/domain/valueobjects"
	httphandlers "github.com/fitcore/users-service/internal/handlers/http"
	"github.com/fitcore/users-service/internal/handlers/middleware"
	"github.com/fitcore/users-service/internal/infrastructure/i18n"
)

var _ = Describe("StudentHandler", func() {
	var (
		useCases *fakeStudentUseCases
		storage  *fakeStorage
		router   *gin.Engine
	)

	newRouter := func() *gin.Engine {
		gin.SetMode(gin.TestMode)
		translator, err := i18n.New("en")
		Expect(err).NotTo(HaveOccurred())

		handler := httphandlers.NewStudentHandler(useCases, useCases, storage, nopLogger{})

		r := gin.New()
		r.Use(func(c *gin.Context) {
			c.Set("base_url", "http://localhost:8080")
			c.Next()
		})
		r.Use(middleware.I18n(translator))

		students := r.Group("/api/v1/students")
		{
			students.POST("", handler.Register)
			students.GET("", handler.List)
			students.GET("/search", handler.Search)
			students.GET("/:id", handler.Get)
			students.PATCH("/:id/plan", handler.ChangePlan)
			students.DELETE("/:id", handler.Delete)
			students.POST("/:id/profile-picture", handler.UploadProfilePicture)
			students.GET("/:id/profile-picture", handler.GetProfilePicture)
		}
		return r
	}

	BeforeEach(func() {
		useCases = &fakeStudentUseCases{}
		storage = newFakeStorage()
		router = newRouter()
	})

	Describe("POST /api/v1/students", func() {
		It("matricula um aluno válido e responde 201", func() {
			student := newStudent()
			useCases.registerFn = func(_ context.Context, input ports.RegisterStudentInput) (*entities.Student, error) {
				Expect(input.PlanType).To(Equal("PREMIUM"))
				return student, nil
			}

			body := `{
				"name": "Maria Santos",
				"email": "maria.santos@fitcore.com",
				"cpf": "123.456.789-01",
				"birthDate": "1995-03-12",
				"phone": "(11) 98765-4321",
				"plan": "PREMIUM",
				"weight": 62.5,
				"height": 165
			}`

			w := httptest.NewRecorder()
			req := httptest.NewRequest("POST", "/api/v1/students", strings.NewReader(body))
			req.Header.Set("Content-Type", "application/json")
			router.ServeHTTP(w, req)

			Expect(w.Code).To(Equal(http.StatusCreated))

			var response map[string]interface{}
			Expect(json.Unmarshal(w.Body.Bytes(), &response)).To(Succeed())
			Expect(response["name"]).To(Equal("Maria Santos"))
			Expect(response["bmi"]).To(BeNumerically("~", 22.96, 0.01))

			plan := response["plan"].(map[string]interface{})
			Expect(plan["type"]).To(Equal("PREMIUM"))
			Expect(plan["monthlyFee"]).To(BeNumerically("==", 189.90))
		})

		It("responde 422 com erros campo a campo para corpo inválido", func() {
			body := `{"name": "M", "email": "not-an-email", "birthDate": "12/03/1995"}`

			w := httptest.NewRecorder()
			req := httptest.NewRequest("POST", "/api/v1/students", strings.NewReader(body))
			req.Header.Set("Content-Type", "application/json")
			router.ServeHTTP(w, req)

			Expect(w.Code).To(Equal(http.StatusUnprocessableEntity))
			Expect(w.Header().Get("Content-Type")).To(ContainSubstring("application/problem+json"))

			var problem map[string]interface{}
			Expect(json.Unmarshal(w.Body.Bytes(), &problem)).To(Succeed())
			Expect(problem["type"]).To(Equal("http://localhost:8080/problems/validation-error"))
			Expect(problem["errors"]).NotTo(BeEmpty())
		})

		It("responde 409 para e-mail já cadastrado", func() {
			useCases.registerFn = func(_ context.Context, input ports.RegisterStudentInput) (*entities.Student, error) {
				return nil, errors.NewEmailAlreadyRegistered(input.Email)
			}

			body := `{
				"name": "Maria Santos",
				"email": "maria.santos@fitcore.com",
				"cpf": "123.456.789-01",
				"birthDate": "1995-03-12",
				"phone": "(11) 98765-4321",
				"plan": "PREMIUM"
			}`

			w := httptest.NewRecorder()
			req := httptest.NewRequest("POST", "/api/v1/students", strings.NewReader(body))
			req.Header.Set("Content-Type", "application/json")
			router.ServeHTTP(w, req)

			Expect(w.Code).To(Equal(http.StatusConflict))

			var problem map[string]interface{}
			Expect(json.Unmarshal(w.Body.Bytes(), &problem)).To(Succeed())
			Expect(problem["detail"]).To(ContainSubstring("maria.santos@fitcore.com"))
		})

		It("traduz o detalhe do conflito conforme o Accept-Language", func() {
			useCases.registerFn = func(_ context.Context, input ports.RegisterStudentInput) (*entities.Student, error) {
				return nil, errors.NewEmailAlreadyRegistered(input.Email)
			}

			body := `{
				"name": "Maria Santos",
				"email": "maria.santos@fitcore.com",
				"cpf": "123.456.789-01",
				"birthDate": "1995-03-12",
				"phone": "(11) 98765-4321",
				"plan": "PREMIUM"
			}`

			w := httptest.NewRecorder()
			req := httptest.NewRequest("POST", "/api/v1/students", strings.NewReader(body))
			req.Header.Set("Content-Type", "application/json")
			req.Header.Set("Accept-Language", "pt-BR")
			router.ServeHTTP(w, req)

			Expect(w.Code).To(Equal(http.StatusConflict))

			var problem map[string]interface{}
			Expect(json.Unmarshal(w.Body.Bytes(), &problem)).To(Succeed())
			Expect(problem["title"]).To(Equal("Conflito"))
			Expect(problem["detail"]).To(ContainSubstring("já está cadastrado"))
		})
	})

	Describe("GET /api/v1/students/:id", func() {
		It("responde 404 para aluno inexistente", func() {
			id := valueobjects.NewUserID()
			useCases.findByIDFn = func(_ context.Context, gotID valueobjects.UserID) (*entities.Student, error) {
				Expect(gotID).To(Equal(id))
				return nil, errors.NewStudentNotFound(gotID.String())
			}

			w := httptest.NewRecorder()
			req := httptest.NewRequest("GET", "/api/v1/students/"+id.String(), nil)
			router.ServeHTTP(w, req)

			Expect(w.Code).To(Equal(http.StatusNotFound))

			var problem map[string]interface{}
			Expect(json.Unmarshal(w.Body.Bytes(), &problem)).To(Succeed())
			Expect(problem["detail"]).To(ContainSubstring(id.String()))
		})

		It("responde 400 para id que não é UUID", func() {
			w := httptest.NewRecorder()
			req := httptest.NewRequest("GET", "/api/v1/students/abc", nil)
			router.ServeHTTP(w, req)

			Expect(w.Code).To(Equal(http.StatusBadRequest))
		})
	})

	Describe("GET /api/v1/students/search", func() {
		It("responde 404 com detalhe próprio quando a busca não encontra ninguém", func() {
			w := httptest.NewRecorder()
			req := httptest.NewRequest("GET", "/api/v1/students/search?email=ninguem@fitcore.com", nil)
			router.ServeHTTP(w, req)

			Expect(w.Code).To(Equal(http.StatusNotFound))

			var problem map[string]interface{}
			Expect(json.Unmarshal(w.Body.Bytes(), &problem)).To(Succeed())
			Expect(problem["title"]).To(Equal("Resource not found"))
			Expect(problem["detail"]).To(Equal("No user matches the given criteria"))
		})
	})

	Describe("PATCH /api/v1/students/:id/plan", func() {
		It("responde 400 para plano desconhecido", func() {
			id := valueobjects.NewUserID()
			useCases.changePlanFn = func(_ context.Context, _ valueobjects.UserID, planType string) (*entities.Student, error) {
				_, err := entities.PlanFromString(planType)
				return nil, err
			}

			w := httptest.NewRecorder()
			req := httptest.NewRequest("PATCH", "/api/v1/students/"+id.String()+"/plan", strings.NewReader(`{"plan": "gold"}`))
			req.Header.Set("Content-Type", "application/json")
			router.ServeHTTP(w, req)

			Expect(w.Code).To(Equal(http.StatusBadRequest))

			var problem map[string]interface{}
			Expect(json.Unmarshal(w.Body.Bytes(), &problem)).To(Succeed())
			Expect(problem["detail"]).To(ContainSubstring("BASIC, INTERMEDIATE, PREMIUM"))
		})
	})

	Describe("DELETE /api/v1/students/:id", func() {
		It("responde 204 após remover", func() {
			id := valueobjects.NewUserID()
			useCases.deleteFn = func(_ context.Context, _ valueobjects.UserID) (bool, error) {
				return true, nil
			}

			w := httptest.NewRecorder()
			req := httptest.NewRequest("DELETE", "/api/v1/students/"+id.String(), nil)
			router.ServeHTTP(w, req)

			Expect(w.Code).To(Equal(http.StatusNoContent))
		})
	})

	Describe("profile picture", func() {
		It("envia a foto e persiste a URL pública", func() {
			student := newStudent()
			useCases.findByIDFn = func(context.Context, valueobjects.UserID) (*entities.Student, error) {
				return student, nil
			}
			useCases.updateFn = func(_ context.Context, _ valueobjects.UserID, input ports.UpdateStudentInput) (*entities.Student, error) {
				Expect(input.UpdateProfileURL).To(BeTrue())
				Expect(*input.ProfileURL).To(HavePrefix("http://storage.local/profiles/users/"))
				return student.WithProfileURL(input.ProfileURL), nil
			}

			var body bytes.Buffer
			writer := multipart.NewWriter(&body)
			part, err := writer.CreateFormFile("file", "avatar.png")
			Expect(err).NotTo(HaveOccurred())
			_, err = part.Write([]byte("fake-image-bytes"))
			Expect(err).NotTo(HaveOccurred())
			Expect(writer.Close()).To(Succeed())

			w := httptest.NewRecorder()
			req := httptest.NewRequest("POST", "/api/v1/students/"+student.ID.String()+"/profile-picture", &body)
			req.Header.Set("Content-Type", writer.FormDataContentType())
			router.ServeHTTP(w, req)

			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(storage.uploads).To(HaveLen(1))

			var response map[string]interface{}
			Expect(json.Unmarshal(w.Body.Bytes(), &response)).To(Succeed())
			Expect(response["profileUrl"]).To(HavePrefix("http://storage.local/profiles/"))
		})

		It("remove a foto enviada quando a persistência falha", func() {
			student := newStudent()
			useCases.findByIDFn = func(context.Context, valueobjects.UserID) (*entities.Student, error) {
				return student, nil
			}
			useCases.updateFn = func(_ context.Context, _ valueobjects.UserID, _ ports.UpdateStudentInput) (*entities.Student, error) {
				return nil, errors.NewUnexpected(fmt.Errorf("connection lost"))
			}

			var body bytes.Buffer
			writer := multipart.NewWriter(&body)
			part, err := writer.CreateFormFile("file", "avatar.png")
			Expect(err).NotTo(HaveOccurred())
			_, err = part.Write([]byte("fake-image-bytes"))
			Expect(err).NotTo(HaveOccurred())
			Expect(writer.Close()).To(Succeed())

			w := httptest.NewRecorder()
			req := httptest.NewRequest("POST", "/api/v1/students/"+student.ID.String()+"/profile-picture", &body)
			req.Header.Set("Content-Type", writer.FormDataContentType())
			router.ServeHTTP(w, req)

			Expect(w.Code).To(Equal(http.StatusInternalServerError))
			Expect(storage.uploads).To(BeEmpty())
			Expect(storage.deleted).To(HaveLen(1))
			Expect(storage.deleted[0]).To(HavePrefix("users/" + student.ID.String() + "/"))
		})

		It("responde 404 quando o aluno não possui foto", func() {
			student := newStudent()
			useCases.findByIDFn = func(context.Context, valueobjects.UserID) (*entities.Student, error) {
				return student, nil
			}

			w := httptest.NewRecorder()
			req := httptest.NewRequest("GET", "/api/v1/students/"+student.ID.String()+"/profile-picture", nil)
			router.ServeHTTP(w, req)

			Expect(w.Code).To(Equal(http.StatusNotFound))

			var problem map[string]interface{}
			Expect(json.Unmarshal(w.Body.Bytes(), &problem)).To(Succeed())
			Expect(problem["detail"]).To(Equal(fmt.Sprintf("User %s has no profile picture", student.ID)))
		})

		It("responde 400 sem o campo multipart", func() {
			student := newStudent()
			useCases.findByIDFn = func(context.Context, valueobjects.UserID) (*entities.Student, error) {
				return student, nil
			}

			w := httptest.NewRecorder()
			req := httptest.NewRequest("POST", "/api/v1/students/"+student.ID.String()+"/profile-picture", nil)
			router.ServeHTTP(w, req)

			Expect(w.Code).To(Equal(http.StatusBadRequest))
		})
	})
})
