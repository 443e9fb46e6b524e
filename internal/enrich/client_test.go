package enrich

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"edumigrate/internal/config"
)

func newTestClient(handler http.HandlerFunc) (*Client, *httptest.Server) {
	srv := httptest.NewServer(handler)
	c := NewClient(config.API{BaseURL: srv.URL, SessionCookie: "connect.sid=fixture"})
	return c, srv
}

func TestHierarchyExtractsContent(t *testing.T) {
	var gotPath, gotCookie string
	c, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path + "?" + r.URL.RawQuery
		gotCookie = r.Header.Get("Cookie")
		_, _ = w.Write([]byte(`{"result":{"content":{"name":"Algebra","medium":["English","Hindi"]}}}`))
	})
	defer srv.Close()

	res := c.Hierarchy(context.Background(), "do_123")
	if res.Empty() {
		t.Fatalf("expected hierarchy payload, got empty result")
	}
	if gotPath != "/hierarchy/do_123?mode=edit" {
		t.Fatalf("unexpected request path %q", gotPath)
	}
	if gotCookie != "connect.sid=fixture" {
		t.Fatalf("expected session cookie, got %q", gotCookie)
	}
	if res.String("name") != "Algebra" {
		t.Fatalf("expected name Algebra, got %q", res.String("name"))
	}
	if res.First("medium") != "English" {
		t.Fatalf("expected first medium English, got %q", res.First("medium"))
	}
}

func TestHierarchyDegradesToEmpty(t *testing.T) {
	cases := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{"server error", func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}},
		{"missing content field", func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`{"result":{}}`))
		}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c, srv := newTestClient(tc.handler)
			defer srv.Close()
			if res := c.Hierarchy(context.Background(), "do_1"); !res.Empty() {
				t.Fatalf("expected empty result, got %s", res.Raw())
			}
		})
	}
}

func TestHierarchyUnreachableServer(t *testing.T) {
	c, srv := newTestClient(func(http.ResponseWriter, *http.Request) {})
	srv.Close()
	if res := c.Hierarchy(context.Background(), "do_1"); !res.Empty() {
		t.Fatalf("expected empty result from unreachable server")
	}
}

func TestSearchQuestionSetPostsFilter(t *testing.T) {
	var body []byte
	c, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		body, _ = io.ReadAll(r.Body)
		_, _ = w.Write([]byte(`{"result":{"QuestionSet":[{"name":"Unit test","maxScore":20}]}}`))
	})
	defer srv.Close()

	res := c.SearchQuestionSet(context.Background(), "qs_9")
	if res.Empty() {
		t.Fatalf("expected question set payload")
	}
	var filter struct {
		Request struct {
			Filters struct {
				Identifier string `json:"identifier"`
				ObjectType string `json:"objectType"`
			} `json:"filters"`
		} `json:"request"`
	}
	if err := json.Unmarshal(body, &filter); err != nil {
		t.Fatalf("request body is not valid JSON: %v", err)
	}
	if filter.Request.Filters.Identifier != "qs_9" || filter.Request.Filters.ObjectType != "QuestionSet" {
		t.Fatalf("unexpected filter body %s", body)
	}
	if res.First("name") != "Unit test" {
		t.Fatalf("expected first set name, got %q", res.First("name"))
	}
	if res.Float("0.maxScore") != 20 {
		t.Fatalf("expected maxScore 20, got %v", res.Float("0.maxScore"))
	}
}

func TestResultJSONFallback(t *testing.T) {
	var empty Result
	if string(empty.JSON("{}")) != "{}" {
		t.Fatalf("expected fallback for empty result")
	}
	full := NewResult([]byte(`{"a":1}`))
	if string(full.JSON("{}")) != `{"a":1}` {
		t.Fatalf("expected raw payload passthrough")
	}
}
