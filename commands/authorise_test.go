package commands

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestAuthoriseCallback(t *testing.T) {
	authorised := make(chan string, 1)
	refused := make(chan error, 1)

	srv := httptest.NewServer(callback("state-token", authorised, refused))
	defer srv.Close()

	response, err := http.Get(srv.URL + "/?state=state-token&code=4/0AX4XfWh")
	if err != nil {
		t.Fatalf("Unexpected error invoking callback (%v)", err)
	}

	response.Body.Close()

	if response.StatusCode != http.StatusOK {
		t.Fatalf("Incorrect status - expected:%v, got:%v", http.StatusOK, response.StatusCode)
	}

	select {
	case code := <-authorised:
		if code != "4/0AX4XfWh" {
			t.Errorf("Incorrect authorisation code - expected:%v, got:%v", "4/0AX4XfWh", code)
		}
	default:
		t.Errorf("Authorisation code not forwarded")
	}
}

func TestAuthoriseCallbackWithInvalidState(t *testing.T) {
	authorised := make(chan string, 1)
	refused := make(chan error, 1)

	srv := httptest.NewServer(callback("state-token", authorised, refused))
	defer srv.Close()

	response, err := http.Get(srv.URL + "/?state=forged&code=4/0AX4XfWh")
	if err != nil {
		t.Fatalf("Unexpected error invoking callback (%v)", err)
	}

	response.Body.Close()

	if response.StatusCode != http.StatusBadRequest {
		t.Errorf("Incorrect status - expected:%v, got:%v", http.StatusBadRequest, response.StatusCode)
	}

	if len(authorised) != 0 {
		t.Errorf("Authorisation code forwarded for invalid state")
	}
}

func TestAuthoriseCallbackWithAccessDenied(t *testing.T) {
	authorised := make(chan string, 1)
	refused := make(chan error, 1)

	srv := httptest.NewServer(callback("state-token", authorised, refused))
	defer srv.Close()

	response, err := http.Get(srv.URL + "/?state=state-token&error=access_denied")
	if err != nil {
		t.Fatalf("Unexpected error invoking callback (%v)", err)
	}

	response.Body.Close()

	select {
	case err := <-refused:
		if err.Error() != "access_denied" {
			t.Errorf("Incorrect error - expected:%v, got:%v", "access_denied", err)
		}
	default:
		t.Errorf("Refusal not forwarded")
	}
}
