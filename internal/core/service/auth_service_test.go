package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/gasixone/crmpro-backend/internal/core/domain"
	"github.com/gasixone/crmpro-backend/internal/core/ports"
)

// stubStore keeps the document in memory, handing out a fresh copy on every
// Read the way a real decode does.
type stubStore struct {
	doc      *domain.Document
	readErr  error
	writeErr error
	writes   int
}

func newStubStore() *stubStore {
	return &stubStore{doc: domain.NewDocument()}
}

func (s *stubStore) Read(_ context.Context) (*domain.Document, error) {
	if s.readErr != nil {
		return nil, s.readErr
	}
	clone := &domain.Document{
		Users:    append([]domain.User(nil), s.doc.Users...),
		Contacts: append([]domain.Contact(nil), s.doc.Contacts...),
	}
	return clone, nil
}

func (s *stubStore) Write(_ context.Context, doc *domain.Document) error {
	if s.writeErr != nil {
		return s.writeErr
	}
	s.writes++
	s.doc = doc
	return nil
}

type sentMail struct {
	to      string
	subject string
	body    string
}

type stubMailer struct {
	sent []sentMail
}

func (m *stubMailer) Send(_ context.Context, to, subject, body string) error {
	m.sent = append(m.sent, sentMail{to: to, subject: subject, body: body})
	return nil
}

func newTestService(store *stubStore, mailer *stubMailer) *AuthService {
	return NewAuthService(store, mailer, "secret", 7*24*time.Hour, "http://localhost:3000")
}

func register(t *testing.T, svc *AuthService, name, email, company string) *domain.User {
	t.Helper()
	user, err := svc.Register(context.Background(), ports.RegisterInput{
		Name: name, Email: email, Company: company,
	})
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	return user
}

func TestAuthService_Register_Success(t *testing.T) {
	store := newStubStore()
	mailer := &stubMailer{}
	svc := newTestService(store, mailer)

	user := register(t, svc, "Ada", "ada@x.com", "Acme")

	if user.ID == "" {
		t.Fatalf("expected generated id")
	}
	if !user.Verified {
		t.Fatalf("expected verified=true at creation")
	}
	if user.VerificationToken != nil {
		t.Fatalf("expected verificationToken=null, got %q", *user.VerificationToken)
	}
	if user.Password != "" {
		t.Fatalf("expected no password to be stored")
	}
	if user.Plan != domain.DefaultPlan {
		t.Fatalf("expected default plan %q, got %q", domain.DefaultPlan, user.Plan)
	}
	if got, want := user.TrialEndsAt, user.CreatedAt.Add(domain.TrialPeriod); !got.Equal(want) {
		t.Fatalf("trialEndsAt = %v, want %v", got, want)
	}
	if store.writes != 1 {
		t.Fatalf("expected exactly one store write, got %d", store.writes)
	}
	if len(mailer.sent) != 1 {
		t.Fatalf("expected exactly one email, got %d", len(mailer.sent))
	}
	if mailer.sent[0].to != "ada@x.com" {
		t.Fatalf("email sent to %q", mailer.sent[0].to)
	}
}

func TestAuthService_Register_KeepsPlanWhenGiven(t *testing.T) {
	store := newStubStore()
	svc := newTestService(store, &stubMailer{})

	user, err := svc.Register(context.Background(), ports.RegisterInput{
		Name: "Ada", Email: "ada@x.com", Company: "Acme", Plan: "Pro",
	})
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if user.Plan != "Pro" {
		t.Fatalf("expected plan Pro, got %q", user.Plan)
	}
}

func TestAuthService_Register_MissingFields(t *testing.T) {
	svc := newTestService(newStubStore(), &stubMailer{})

	cases := []ports.RegisterInput{
		{Email: "a@x.com", Company: "Acme"},
		{Name: "Ada", Company: "Acme"},
		{Name: "Ada", Email: "a@x.com"},
		{Name: "  ", Email: "a@x.com", Company: "Acme"},
	}
	for _, in := range cases {
		if _, err := svc.Register(context.Background(), in); !errors.Is(err, domain.ErrMissingFields) {
			t.Fatalf("input %+v: expected ErrMissingFields, got %v", in, err)
		}
	}
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	store := newStubStore()
	svc := newTestService(store, &stubMailer{})

	register(t, svc, "Ada", "ada@x.com", "Acme")

	_, err := svc.Register(context.Background(), ports.RegisterInput{
		Name: "Other", Email: "ADA@X.COM", Company: "Globex",
	})
	if !errors.Is(err, domain.ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
	if len(store.doc.Users) != 1 {
		t.Fatalf("expected one stored user, got %d", len(store.doc.Users))
	}
}

func TestAuthService_Register_ListedImmediately(t *testing.T) {
	store := newStubStore()
	svc := newTestService(store, &stubMailer{})

	register(t, svc, "Ada", "ada@x.com", "Acme")

	users, err := svc.ListUsers(context.Background())
	if err != nil {
		t.Fatalf("ListUsers returned error: %v", err)
	}
	if len(users) != 1 || users[0].Email != "ada@x.com" || !users[0].Verified {
		t.Fatalf("unexpected listing: %+v", users)
	}
}

// The token embedded in the verification email is never stored on the user
// record, so verifying with it must fail.
func TestAuthService_VerifyEmail_EmailedTokenNeverMatches(t *testing.T) {
	store := newStubStore()
	mailer := &stubMailer{}
	svc := newTestService(store, mailer)

	register(t, svc, "Ada", "ada@x.com", "Acme")

	body := mailer.sent[0].body
	marker := "/verify-email/"
	idx := strings.Index(body, marker)
	if idx < 0 {
		t.Fatalf("verification link missing from email body: %s", body)
	}
	rest := body[idx+len(marker):]
	token := rest[:strings.IndexByte(rest, '"')]
	if token == "" {
		t.Fatalf("could not extract token from body: %s", body)
	}

	if _, err := svc.VerifyEmail(context.Background(), token); !errors.Is(err, domain.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for emailed token, got %v", err)
	}
}

func TestAuthService_VerifyEmail_UnknownToken(t *testing.T) {
	svc := newTestService(newStubStore(), &stubMailer{})

	if _, err := svc.VerifyEmail(context.Background(), "nope"); !errors.Is(err, domain.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
	if _, err := svc.VerifyEmail(context.Background(), ""); !errors.Is(err, domain.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for empty token, got %v", err)
	}
}

func TestAuthService_VerifyEmail_StoredToken(t *testing.T) {
	store := newStubStore()
	svc := newTestService(store, &stubMailer{})

	token := "tok-123"
	store.doc.Users = append(store.doc.Users, domain.User{
		ID: "u1", Name: "Ada", Email: "ada@x.com", Company: "Acme",
		Verified: false, VerificationToken: &token,
	})

	already, err := svc.VerifyEmail(context.Background(), token)
	if err != nil {
		t.Fatalf("VerifyEmail returned error: %v", err)
	}
	if already {
		t.Fatalf("expected first-time verification, got already-verified")
	}

	stored := store.doc.FindUserByID("u1")
	if stored == nil || !stored.Verified {
		t.Fatalf("user not marked verified: %+v", stored)
	}
	if stored.VerificationToken != nil {
		t.Fatalf("expected token cleared after verification")
	}
	if stored.VerifiedAt == nil {
		t.Fatalf("expected verifiedAt to be stamped")
	}
}

func TestAuthService_VerifyEmail_Idempotent(t *testing.T) {
	store := newStubStore()
	svc := newTestService(store, &stubMailer{})

	token := "tok-123"
	store.doc.Users = append(store.doc.Users, domain.User{
		ID: "u1", Email: "ada@x.com", Verified: true, VerificationToken: &token,
	})

	already, err := svc.VerifyEmail(context.Background(), token)
	if err != nil {
		t.Fatalf("VerifyEmail returned error: %v", err)
	}
	if !already {
		t.Fatalf("expected already-verified result")
	}
	if store.writes != 0 {
		t.Fatalf("idempotent verification must not write, got %d writes", store.writes)
	}
}

// Registration never stores a password, so login on a fresh account fails
// regardless of the supplied password.
func TestAuthService_Login_NeverSetPassword(t *testing.T) {
	store := newStubStore()
	svc := newTestService(store, &stubMailer{})

	register(t, svc, "Ada", "ada@x.com", "Acme")

	for _, pw := range []string{"anything", ""} {
		if _, _, err := svc.Login(context.Background(), "ada@x.com", pw); !errors.Is(err, domain.ErrInvalidCredentials) {
			t.Fatalf("password %q: expected ErrInvalidCredentials, got %v", pw, err)
		}
	}
}

func TestAuthService_Login_UserNotFound(t *testing.T) {
	svc := newTestService(newStubStore(), &stubMailer{})

	if _, _, err := svc.Login(context.Background(), "ghost@x.com", "pw"); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestAuthService_Login_InjectedPassword(t *testing.T) {
	store := newStubStore()
	svc := newTestService(store, &stubMailer{})

	user := register(t, svc, "Ada", "ada@x.com", "Acme")
	store.doc.FindUserByID(user.ID).Password = "hunter2"

	token, got, err := svc.Login(context.Background(), "ada@x.com", "hunter2")
	if err != nil {
		t.Fatalf("Login returned error: %v", err)
	}
	if got == nil || got.ID != user.ID {
		t.Fatalf("unexpected user: %+v", got)
	}

	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte("secret"), nil
	})
	if err != nil || !parsed.Valid {
		t.Fatalf("session token invalid: %v", err)
	}
	if claims["user_id"] != user.ID || claims["email"] != "ada@x.com" {
		t.Fatalf("unexpected claims: %v", claims)
	}
	exp, _ := claims["exp"].(float64)
	if time.Unix(int64(exp), 0).Before(time.Now().Add(6 * 24 * time.Hour)) {
		t.Fatalf("expected ~7 day expiry, got %v", time.Unix(int64(exp), 0))
	}
}

// The verified-status gate at login is disabled: unverified accounts with a
// password can still log in.
func TestAuthService_Login_UnverifiedUserAllowed(t *testing.T) {
	store := newStubStore()
	svc := newTestService(store, &stubMailer{})

	store.doc.Users = append(store.doc.Users, domain.User{
		ID: "u1", Email: "ada@x.com", Password: "hunter2", Verified: false,
	})

	if _, _, err := svc.Login(context.Background(), "ada@x.com", "hunter2"); err != nil {
		t.Fatalf("expected login to succeed for unverified user, got %v", err)
	}
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	store := newStubStore()
	svc := newTestService(store, &stubMailer{})

	store.doc.Users = append(store.doc.Users, domain.User{
		ID: "u1", Email: "ada@x.com", Password: "hunter2", Verified: true,
	})

	if _, _, err := svc.Login(context.Background(), "ada@x.com", "Hunter2"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_GetUser(t *testing.T) {
	store := newStubStore()
	svc := newTestService(store, &stubMailer{})

	user := register(t, svc, "Ada", "ada@x.com", "Acme")

	got, err := svc.GetUser(context.Background(), user.ID)
	if err != nil {
		t.Fatalf("GetUser returned error: %v", err)
	}
	if got.Email != "ada@x.com" {
		t.Fatalf("unexpected user: %+v", got)
	}

	if _, err := svc.GetUser(context.Background(), "gone"); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestAuthService_Register_WriteFailure(t *testing.T) {
	store := newStubStore()
	store.writeErr = errors.New("disk full")
	mailer := &stubMailer{}
	svc := newTestService(store, mailer)

	if _, err := svc.Register(context.Background(), ports.RegisterInput{
		Name: "Ada", Email: "ada@x.com", Company: "Acme",
	}); err == nil {
		t.Fatalf("expected write failure to propagate")
	}
	if len(mailer.sent) != 0 {
		t.Fatalf("no email should be sent when persistence fails")
	}
}
