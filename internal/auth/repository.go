package auth

import (
	"fmt"
	"net/http"

	firebaseAuth "firebase.google.com/go/auth"
	"github.com/mitchellh/mapstructure"

	"github.com/chrisnmorrison/lms-italian-studies-department/internal/config"
	"github.com/chrisnmorrison/lms-italian-studies-department/internal/firebase"
	"github.com/chrisnmorrison/lms-italian-studies-department/internal/store"
)

// Repository encapsulates session management against Firebase Auth and the
// users collection.
type Repository interface {
	// CreateSession exchanges a Firebase ID token for a session cookie value.
	CreateSession(idToken string) (string, error)
	// VerifySessionCookie validates a session cookie and returns the Principal,
	// with IsAdmin read from the principal's own user document.
	VerifySessionCookie(cookie *http.Cookie) (*Principal, error)
	// SignOut revokes the user's refresh tokens, invalidating their sessions.
	SignOut(uid string) error
}

type firebaseRepository struct {
	authClient *firebaseAuth.Client
	client     store.Client
}

var repository Repository

// Init wires the package against Firebase Auth and the document store. Must
// be called before mounting Routes or any middleware.
func Init(client store.Client) error {
	authClient, err := firebase.App.Auth(firebase.Context)
	if err != nil {
		return fmt.Errorf("Auth client error: %v", err)
	}

	repository = &firebaseRepository{authClient: authClient, client: client}
	return nil
}

func (r *firebaseRepository) CreateSession(idToken string) (string, error) {
	cookie, err := r.authClient.SessionCookie(firebase.Context, idToken, config.Config.SessionCookieExpiration)
	if err != nil {
		return "", fmt.Errorf("error creating session cookie: %v", err)
	}
	return cookie, nil
}

func (r *firebaseRepository) VerifySessionCookie(cookie *http.Cookie) (*Principal, error) {
	decoded, err := r.authClient.VerifySessionCookieAndCheckRevoked(firebase.Context, cookie.Value)
	if err != nil {
		return nil, InvalidSessionError
	}

	return r.getPrincipal(decoded.UID)
}

func (r *firebaseRepository) SignOut(uid string) error {
	return r.authClient.RevokeRefreshTokens(firebase.Context, uid)
}

// getPrincipal loads the user document backing the session. A Firebase user
// without a document yet (first sign-in) gets one created with isAdmin false.
func (r *firebaseRepository) getPrincipal(uid string) (*Principal, error) {
	doc, err := r.client.Get(firebase.Context, FirestoreUsersCollection, uid)
	if err == store.NotFoundError {
		fbUser, err := r.authClient.GetUser(firebase.Context, uid)
		if err != nil {
			return nil, fmt.Errorf("error getting user record: %v", err)
		}

		principal := &Principal{ID: uid, Email: fbUser.Email, IsAdmin: false}
		err = r.client.Set(firebase.Context, FirestoreUsersCollection, uid, map[string]interface{}{
			"email":   principal.Email,
			"isAdmin": principal.IsAdmin,
		})
		if err != nil {
			return nil, fmt.Errorf("error creating user document: %v", err)
		}
		return principal, nil
	}
	if err != nil {
		return nil, err
	}

	var principal Principal
	if err := mapstructure.Decode(doc.Data, &principal); err != nil {
		return nil, fmt.Errorf("error decoding user document: %v", err)
	}
	principal.ID = doc.ID

	return &principal, nil
}

// Authorize checks that the principal exists and is an administrator. Every
// mutating repository operation calls this at its boundary.
func Authorize(principal *Principal) error {
	if principal == nil {
		return PrincipalMissingError
	}
	if !principal.IsAdmin {
		return UnauthorizedError
	}
	return nil
}
