package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/hbnb/hbnb-api/internal/core/domain"
	"github.com/hbnb/hbnb-api/internal/core/ports"
)

func TestUserHandler_Create_AnonymousCannotGrantAdmin(t *testing.T) {
	e := newTestEcho()
	stub := &stubFacade{
		createUserFn: func(ctx context.Context, in ports.CreateUserInput) (*domain.User, error) {
			if in.IsAdmin {
				t.Fatalf("anonymous registration must not grant admin")
			}
			u, err := domain.NewUser(in.FirstName, in.LastName, in.Email, "hash", in.IsAdmin)
			if err != nil {
				t.Fatalf("build user: %v", err)
			}
			return u, nil
		},
	}
	handler := NewUserHandler(stub)

	body := strings.NewReader(`{"first_name":"Alice","last_name":"Smith","email":"alice@example.com","password":"secret123","is_admin":true}`)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/users", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	if strings.Contains(rec.Body.String(), `"password"`) {
		t.Fatalf("password leaked in response: %s", rec.Body.String())
	}
}

func TestUserHandler_Create_AuthenticatedNonAdminForbidden(t *testing.T) {
	e := newTestEcho()
	handler := NewUserHandler(&stubFacade{})

	body := strings.NewReader(`{"first_name":"Bob","last_name":"Jones","email":"bob@example.com","password":"secret123"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/users", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("user_id", "user-1")
	c.Set("is_admin", false)

	err := handler.Create(c)
	if !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestUserHandler_Create_AdminMayGrantAdmin(t *testing.T) {
	e := newTestEcho()
	stub := &stubFacade{
		createUserFn: func(ctx context.Context, in ports.CreateUserInput) (*domain.User, error) {
			if !in.IsAdmin {
				t.Fatalf("admin flag should be preserved for admin caller")
			}
			u, err := domain.NewUser(in.FirstName, in.LastName, in.Email, "hash", in.IsAdmin)
			if err != nil {
				t.Fatalf("build user: %v", err)
			}
			return u, nil
		},
	}
	handler := NewUserHandler(stub)

	body := strings.NewReader(`{"first_name":"Carol","last_name":"Admin","email":"carol@example.com","password":"secret123","is_admin":true}`)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/users", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("user_id", "admin-1")
	c.Set("is_admin", true)

	if err := handler.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
}

func TestUserHandler_Create_InvalidEmail(t *testing.T) {
	e := newTestEcho()
	handler := NewUserHandler(&stubFacade{})

	body := strings.NewReader(`{"first_name":"Alice","last_name":"Smith","email":"not-an-email","password":"secret123"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/users", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := handler.Create(c)
	he, ok := err.(*echo.HTTPError)
	if !ok {
		t.Fatalf("expected *echo.HTTPError, got %v", err)
	}
	if he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", he.Code)
	}
}

func TestUserHandler_Update_OtherUserForbidden(t *testing.T) {
	e := newTestEcho()
	handler := NewUserHandler(&stubFacade{})

	body := strings.NewReader(`{"first_name":"Eve"}`)
	req := httptest.NewRequest(http.MethodPut, "/api/v1/users/user-2", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("user-2")
	c.Set("user_id", "user-1")
	c.Set("is_admin", false)

	err := handler.Update(c)
	if !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestUserHandler_Update_NonAdminCannotChangeEmail(t *testing.T) {
	e := newTestEcho()
	handler := NewUserHandler(&stubFacade{})

	body := strings.NewReader(`{"email":"new@example.com"}`)
	req := httptest.NewRequest(http.MethodPut, "/api/v1/users/user-1", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("user-1")
	c.Set("user_id", "user-1")
	c.Set("is_admin", false)

	err := handler.Update(c)
	he, ok := err.(*echo.HTTPError)
	if !ok {
		t.Fatalf("expected *echo.HTTPError, got %v", err)
	}
	if he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", he.Code)
	}
}

func TestUserHandler_Update_SelfRename(t *testing.T) {
	e := newTestEcho()
	stub := &stubFacade{
		updateUserFn: func(ctx context.Context, id string, in ports.UpdateUserInput) (*domain.User, error) {
			if id != "user-1" {
				t.Fatalf("unexpected id %s", id)
			}
			if in.FirstName == nil || *in.FirstName != "Eve" {
				t.Fatalf("first name not forwarded: %+v", in)
			}
			u, err := domain.NewUser("Eve", "Smith", "eve@example.com", "hash", false)
			if err != nil {
				t.Fatalf("build user: %v", err)
			}
			return u, nil
		},
	}
	handler := NewUserHandler(stub)

	body := strings.NewReader(`{"first_name":"Eve"}`)
	req := httptest.NewRequest(http.MethodPut, "/api/v1/users/user-1", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("user-1")
	c.Set("user_id", "user-1")
	c.Set("is_admin", false)

	if err := handler.Update(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}
