package handlers

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const contactBody = `{
	"name": "Omar H",
	"email": "omar@example.com",
	"subject": "Order question",
	"message": "Where is my parcel?"
}`

func TestSubmitContact_SendsAndReturnsReference(t *testing.T) {
	app, server := newTestApp(func(w http.ResponseWriter, r *http.Request) {
		t.Errorf("contact must not touch the core backend")
	})
	defer server.Close()
	router := newTestRouter(app)

	code, body := doJSON(t, router, http.MethodPost, "/contact", contactBody)

	require.Equal(t, http.StatusOK, code)
	assert.NotEmpty(t, body["reference"])
	assert.Equal(t, 1, app.Mailer.(*fakeMailer).sent)
}

func TestSubmitContact_MissingFieldRejected(t *testing.T) {
	app, server := newTestApp(func(w http.ResponseWriter, r *http.Request) {})
	defer server.Close()
	router := newTestRouter(app)

	code, _ := doJSON(t, router, http.MethodPost, "/contact",
		`{"name":"Omar H","email":"omar@example.com","subject":"Hi"}`)

	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, 0, app.Mailer.(*fakeMailer).sent)
}

func TestSubmitContact_InvalidEmailRejected(t *testing.T) {
	app, server := newTestApp(func(w http.ResponseWriter, r *http.Request) {})
	defer server.Close()
	router := newTestRouter(app)

	code, _ := doJSON(t, router, http.MethodPost, "/contact",
		`{"name":"Omar H","email":"not-an-email","subject":"Hi","message":"Hello"}`)

	assert.Equal(t, http.StatusBadRequest, code)
}

func TestSubmitContact_MailFailureIsBadGateway(t *testing.T) {
	app, server := newTestApp(func(w http.ResponseWriter, r *http.Request) {})
	defer server.Close()
	app.Mailer = &fakeMailer{fail: true}
	router := newTestRouter(app)

	code, body := doJSON(t, router, http.MethodPost, "/contact", contactBody)

	assert.Equal(t, http.StatusBadGateway, code)
	assert.NotEmpty(t, body["error"])
}
