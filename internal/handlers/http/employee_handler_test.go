package http_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"time"

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

var _ = Describe("EmployeeHandler", func() {
	var (
		useCases *fakeEmployeeUseCases
		router   *gin.Engine
	)

	newRouter := func() *gin.Engine {
		gin.SetMode(gin.TestMode)
		translator, err := i18n.New("en")
		Expect(err).NotTo(HaveOccurred())

		handler := httphandlers.NewEmployeeHandler(useCases, useCases, newFakeStorage(), nopLogger{})

		r := gin.New()
		r.Use(func(c *gin.Context) {
			c.Set("base_url", "http://localhost:8080")
			c.Next()
		})
		r.Use(middleware.I18n(translator))

		employees := r.Group("/api/v1/employees")
		{
			employees.POST("", handler.Register)
			employees.GET("/:id", handler.Get)
			employees.PATCH("/:id/role", handler.ChangeRole)
			employees.PATCH("/:id/terminate", handler.Terminate)
			employees.PATCH("/:id/reactivate", handler.Reactivate)
		}
		return r
	}

	BeforeEach(func() {
		useCases = &fakeEmployeeUseCases{}
		router = newRouter()
	})

	Describe("POST /api/v1/employees", func() {
		It("contrata um funcionário válido e responde 201", func() {
			employee := newEmployee()
			useCases.registerFn = func(_ context.Context, input ports.RegisterEmployeeInput) (*entities.Employee, error) {
				Expect(input.RoleType).To(Equal("INSTRUCTOR"))
				Expect(input.HireDate).To(Equal(time.Date(2021, 3, 1, 0, 0, 0, 0, time.UTC)))
				return employee, nil
			}

			body := `{
				"name": "Ricardo Gomes",
				"email": "ricardo.gomes@fitcore.com",
				"cpf": "987.654.321-00",
				"birthDate": "1988-07-22",
				"phone": "(11) 91234-5678",
				"role": "INSTRUCTOR",
				"hireDate": "2021-03-01"
			}`

			w := httptest.NewRecorder()
			req := httptest.NewRequest("POST", "/api/v1/employees", strings.NewReader(body))
			req.Header.Set("Content-Type", "application/json")
			router.ServeHTTP(w, req)

			Expect(w.Code).To(Equal(http.StatusCreated))

			var response map[string]interface{}
			Expect(json.Unmarshal(w.Body.Bytes(), &response)).To(Succeed())
			Expect(response["hireDate"]).To(Equal("2021-03-01"))
			Expect(response["active"]).To(BeTrue())

			role := response["role"].(map[string]interface{})
			Expect(role["type"]).To(Equal("INSTRUCTOR"))
			Expect(role["description"]).NotTo(BeEmpty())
		})

		It("responde 422 quando a data de contratação usa formato inválido", func() {
			body := `{
				"name": "Ricardo Gomes",
				"email": "ricardo.gomes@fitcore.com",
				"cpf": "987.654.321-00",
				"birthDate": "1988-07-22",
				"phone": "(11) 91234-5678",
				"role": "INSTRUCTOR",
				"hireDate": "01/03/2021"
			}`

			w := httptest.NewRecorder()
			req := httptest.NewRequest("POST", "/api/v1/employees", strings.NewReader(body))
			req.Header.Set("Content-Type", "application/json")
			router.ServeHTTP(w, req)

			Expect(w.Code).To(Equal(http.StatusUnprocessableEntity))
		})
	})

	Describe("PATCH /api/v1/employees/:id/role", func() {
		It("promove o funcionário e responde 200", func() {
			employee := newEmployee()
			useCases.changeRoleFn = func(_ context.Context, _ valueobjects.UserID, roleType string) (*entities.Employee, error) {
				Expect(roleType).To(Equal("MANAGER"))
				return employee.ChangeRole(entities.RoleManager), nil
			}

			w := httptest.NewRecorder()
			req := httptest.NewRequest("PATCH", "/api/v1/employees/"+employee.ID.String()+"/role", strings.NewReader(`{"role": "MANAGER"}`))
			req.Header.Set("Content-Type", "application/json")
			router.ServeHTTP(w, req)

			Expect(w.Code).To(Equal(http.StatusOK))

			var response map[string]interface{}
			Expect(json.Unmarshal(w.Body.Bytes(), &response)).To(Succeed())
			role := response["role"].(map[string]interface{})
			Expect(role["type"]).To(Equal("MANAGER"))
		})

		It("responde 400 para cargo desconhecido", func() {
			id := valueobjects.NewUserID()
			useCases.changeRoleFn = func(_ context.Context, _ valueobjects.UserID, roleType string) (*entities.Employee, error) {
				_, err := entities.RoleFromString(roleType)
				return nil, err
			}

			w := httptest.NewRecorder()
			req := httptest.NewRequest("PATCH", "/api/v1/employees/"+id.String()+"/role", strings.NewReader(`{"role": "janitor"}`))
			req.Header.Set("Content-Type", "application/json")
			router.ServeHTTP(w, req)

			Expect(w.Code).To(Equal(http.StatusBadRequest))
		})
	})

	Describe("PATCH /api/v1/employees/:id/terminate", func() {
		It("desliga o funcionário na data informada", func() {
			employee := newEmployee()
			useCases.terminateFn = func(_ context.Context, _ valueobjects.UserID, terminationDate time.Time) (*entities.Employee, error) {
				Expect(terminationDate).To(Equal(time.Date(2024, 6, 30, 0, 0, 0, 0, time.UTC)))
				return employee.Terminate(terminationDate)
			}

			w := httptest.NewRecorder()
			req := httptest.NewRequest("PATCH", "/api/v1/employees/"+employee.ID.String()+"/terminate", strings.NewReader(`{"terminationDate": "2024-06-30"}`))
			req.Header.Set("Content-Type", "application/json")
			router.ServeHTTP(w, req)

			Expect(w.Code).To(Equal(http.StatusOK))

			var response map[string]interface{}
			Expect(json.Unmarshal(w.Body.Bytes(), &response)).To(Succeed())
			Expect(response["active"]).To(BeFalse())
			Expect(response["terminationDate"]).To(Equal("2024-06-30"))
		})

		It("aceita corpo vazio e repassa data zerada", func() {
			employee := newEmployee()
			useCases.terminateFn = func(_ context.Context, _ valueobjects.UserID, terminationDate time.Time) (*entities.Employee, error) {
				Expect(terminationDate.IsZero()).To(BeTrue())
				return employee.Terminate(time.Now())
			}

			w := httptest.NewRecorder()
			req := httptest.NewRequest("PATCH", "/api/v1/employees/"+employee.ID.String()+"/terminate", nil)
			router.ServeHTTP(w, req)

			Expect(w.Code).To(Equal(http.StatusOK))
		})

		It("responde 400 quando o desligamento antecede a contratação", func() {
			employee := newEmployee()
			useCases.terminateFn = func(_ context.Context, _ valueobjects.UserID, terminationDate time.Time) (*entities.Employee, error) {
				return employee.Terminate(terminationDate)
			}

			w := httptest.NewRecorder()
			req := httptest.NewRequest("PATCH", "/api/v1/employees/"+employee.ID.String()+"/terminate", strings.NewReader(`{"terminationDate": "2020-01-01"}`))
			req.Header.Set("Content-Type", "application/json")
			router.ServeHTTP(w, req)

			Expect(w.Code).To(Equal(http.StatusBadRequest))
		})
	})

	Describe("PATCH /api/v1/employees/:id/reactivate", func() {
		It("limpa a data de desligamento e responde 200", func() {
			employee := newEmployee()
			terminated, err := employee.Terminate(time.Date(2024, 6, 30, 0, 0, 0, 0, time.UTC))
			Expect(err).NotTo(HaveOccurred())

			useCases.reactivateFn = func(context.Context, valueobjects.UserID) (*entities.Employee, error) {
				return terminated.Reactivate(), nil
			}

			w := httptest.NewRecorder()
			req := httptest.NewRequest("PATCH", "/api/v1/employees/"+employee.ID.String()+"/reactivate", nil)
			router.ServeHTTP(w, req)

			Expect(w.Code).To(Equal(http.StatusOK))

			var response map[string]interface{}
			Expect(json.Unmarshal(w.Body.Bytes(), &response)).To(Succeed())
			Expect(response["active"]).To(BeTrue())
			Expect(response).NotTo(HaveKey("terminationDate"))
		})
	})

	Describe("GET /api/v1/employees/:id", func() {
		It("responde 404 para funcionário inexistente", func() {
			id := valueobjects.NewUserID()
			useCases.findByIDFn = func(_ context.Context, gotID valueobjects.UserID) (*entities.Employee, error) {
				return nil, errors.NewEmployeeNotFound(gotID.String())
			}

			w := httptest.NewRecorder()
			req := httptest.NewRequest("GET", "/api/v1/employees/"+id.String(), nil)
			router.ServeHTTP(w, req)

			Expect(w.Code).To(Equal(http.StatusNotFound))

			var problem map[string]interface{}
			Expect(json.Unmarshal(w.Body.Bytes(), &problem)).To(Succeed())
			Expect(problem["type"]).To(Equal("http://localhost:8080/problems/not-found"))
		})
	})
})
