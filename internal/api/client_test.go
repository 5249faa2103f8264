package api

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/Tanishkag23/xpense/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type roundTripFunc func(*http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req)
}

func stubResponse(contentType, body string) *http.Response {
	h := make(http.Header)
	if contentType != "" {
		h.Set("Content-Type", contentType)
	}
	return &http.Response{
		StatusCode: http.StatusOK,
		Body:       io.NopCloser(strings.NewReader(body)),
		Header:     h,
	}
}

// newStubClient returns a client whose transport records each request and
// answers with respond.
func newStubClient(t *testing.T, respond func(*http.Request) (*http.Response, error)) (*Client, *[]*http.Request) {
	t.Helper()
	var seen []*http.Request
	hc := &http.Client{Transport: roundTripFunc(func(req *http.Request) (*http.Response, error) {
		if req.Body != nil {
			b, _ := io.ReadAll(req.Body)
			req.Body = io.NopCloser(strings.NewReader(string(b)))
			req.Form, _ = url.ParseQuery(string(b))
		}
		seen = append(seen, req)
		return respond(req)
	})}
	c, err := New("https://example.test/", WithHTTPClient(hc))
	require.NoError(t, err)
	return c, &seen
}

func TestCallSniffsJSONContentType(t *testing.T) {
	c, _ := newStubClient(t, func(*http.Request) (*http.Response, error) {
		return stubResponse("application/json; charset=utf-8", ` {"ok":true} `), nil
	})

	resp, err := c.Call(context.Background(), "/api/x", nil)
	require.NoError(t, err)
	assert.True(t, resp.IsJSON())
	assert.JSONEq(t, `{"ok":true}`, string(resp.JSON))
	assert.Empty(t, resp.Text)
}

func TestCallReturnsTextForOtherContentTypes(t *testing.T) {
	c, _ := newStubClient(t, func(*http.Request) (*http.Response, error) {
		return stubResponse("text/html", "<h1>oops</h1>"), nil
	})

	resp, err := c.Call(context.Background(), "/api/x", nil)
	require.NoError(t, err)
	assert.False(t, resp.IsJSON())
	assert.Equal(t, "<h1>oops</h1>", resp.Text)

	var v map[string]any
	assert.ErrorIs(t, resp.Decode(&v), ErrNotJSON)
}

func TestCallAlwaysSendsFormContentType(t *testing.T) {
	c, seen := newStubClient(t, func(*http.Request) (*http.Response, error) {
		return stubResponse("text/plain", ""), nil
	})

	_, err := c.Call(context.Background(), "/api/me", nil)
	require.NoError(t, err)
	_, err = c.Call(context.Background(), "/api/login", &Options{Method: http.MethodPost, Form: url.Values{"a": {"b"}}})
	require.NoError(t, err)

	require.Len(t, *seen, 2)
	for _, req := range *seen {
		assert.Equal(t, FormContentType, req.Header.Get("Content-Type"))
		assert.NotEmpty(t, req.Header.Get("X-Request-ID"))
	}
	assert.Equal(t, http.MethodGet, (*seen)[0].Method)
	assert.Equal(t, http.MethodPost, (*seen)[1].Method)
}

func TestCallIgnoresStatusCode(t *testing.T) {
	c, _ := newStubClient(t, func(*http.Request) (*http.Response, error) {
		r := stubResponse("application/json", `{"ok":false}`)
		r.StatusCode = http.StatusInternalServerError
		return r, nil
	})

	res, err := c.SetIncome(context.Background(), "100")
	require.NoError(t, err)
	assert.False(t, res.OK)
}

func TestCallWrapsTransportErrors(t *testing.T) {
	boom := errors.New("connection refused")
	c, _ := newStubClient(t, func(*http.Request) (*http.Response, error) {
		return nil, boom
	})

	_, err := c.Me(context.Background())
	require.Error(t, err)
	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, PathMe, apiErr.Path)
	assert.ErrorIs(t, err, boom)
}

func TestMalformedJSONIsAnError(t *testing.T) {
	c, _ := newStubClient(t, func(*http.Request) (*http.Response, error) {
		return stubResponse("application/json", `{"income": `), nil
	})

	_, err := c.Dashboard(context.Background())
	assert.Error(t, err)
}

func TestExpenseListPath(t *testing.T) {
	tests := []struct {
		name string
		f    model.ExpenseFilter
		want string
	}{
		{"no filters", model.ExpenseFilter{}, "/api/expenses/list"},
		{"category only", model.ExpenseFilter{Category: "Food"}, "/api/expenses/list?category=Food"},
		{"desc only", model.ExpenseFilter{Description: "bus"}, "/api/expenses/list?desc=bus"},
		{"both", model.ExpenseFilter{Category: "Food", Description: "lunch"}, "/api/expenses/list?category=Food&desc=lunch"},
		{"escaped", model.ExpenseFilter{Category: "Eat & Drink"}, "/api/expenses/list?category=Eat+%26+Drink"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ExpenseListPath(tc.f))
		})
	}
}

func TestDashboardDecodesDecimals(t *testing.T) {
	c, seen := newStubClient(t, func(*http.Request) (*http.Response, error) {
		return stubResponse("application/json", `{"income":1200.5,"totalExpenses":"300.25","byCategory":[{"category":"Food","total":120}]}`), nil
	})

	d, err := c.Dashboard(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "1200.5", d.Income.String())
	assert.Equal(t, "300.25", d.TotalExpenses.String())
	require.Len(t, d.ByCategory, 1)
	assert.Equal(t, "Food", d.ByCategory[0].Category)
	assert.Equal(t, "/api/dashboard", (*seen)[0].URL.Path)
}

func TestAddExpenseSendsFormWithDefaultCurrency(t *testing.T) {
	c, seen := newStubClient(t, func(*http.Request) (*http.Response, error) {
		return stubResponse("application/json", `{"ok":true}`), nil
	})

	res, err := c.AddExpense(context.Background(), model.NewExpense{
		Amount: "12.5", Date: "2024-01-01", Category: "Food",
	})
	require.NoError(t, err)
	assert.True(t, res.OK)

	require.Len(t, *seen, 1)
	req := (*seen)[0]
	assert.Equal(t, http.MethodPost, req.Method)
	assert.Equal(t, PathExpensesAdd, req.URL.Path)
	assert.Equal(t, "12.5", req.Form.Get("amount"))
	assert.Equal(t, "2024-01-01", req.Form.Get("date"))
	assert.Equal(t, "Food", req.Form.Get("category"))
	assert.Equal(t, "", req.Form.Get("description"))
	assert.Equal(t, model.DefaultCurrency, req.Form.Get("currency"))
}

func TestAckTreatsTextAsRejection(t *testing.T) {
	c, _ := newStubClient(t, func(*http.Request) (*http.Response, error) {
		return stubResponse("text/plain", "Internal Server Error"), nil
	})

	res, err := c.Login(context.Background(), model.Credentials{Username: "a", Password: "b"})
	require.NoError(t, err)
	assert.False(t, res.OK)
}

func TestDeleteTransactionUsesQueryID(t *testing.T) {
	c, seen := newStubClient(t, func(*http.Request) (*http.Response, error) {
		return stubResponse("text/plain", "deleted"), nil
	})

	require.NoError(t, c.DeleteTransaction(context.Background(), 7))
	require.Len(t, *seen, 1)
	assert.Equal(t, PathTransactionDelete, (*seen)[0].URL.Path)
	assert.Equal(t, "7", (*seen)[0].URL.Query().Get("id"))
}

func TestLoginCookieCarriesOver(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc(PathLogin, func(w http.ResponseWriter, r *http.Request) {
		assert.NoError(t, r.ParseForm())
		http.SetCookie(w, &http.Cookie{Name: "sid", Value: "s-" + r.PostForm.Get("username"), Path: "/"})
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"ok":true,"user":"`+r.PostForm.Get("username")+`"}`)
	})
	mux.HandleFunc(PathMe, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		ck, err := r.Cookie("sid")
		if err != nil {
			_, _ = io.WriteString(w, `{"loggedIn":false}`)
			return
		}
		_, _ = io.WriteString(w, `{"loggedIn":true,"user":"`+strings.TrimPrefix(ck.Value, "s-")+`"}`)
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	c, err := New(srv.URL)
	require.NoError(t, err)

	id, err := c.Me(context.Background())
	require.NoError(t, err)
	assert.False(t, id.LoggedIn)

	res, err := c.Login(context.Background(), model.Credentials{Username: "alice", Password: "pw"})
	require.NoError(t, err)
	assert.True(t, res.OK)
	assert.Equal(t, "alice", res.User)

	id, err = c.Me(context.Background())
	require.NoError(t, err)
	assert.True(t, id.LoggedIn)
	assert.Equal(t, "alice", id.User)
}

func TestNewRejectsBadBaseURL(t *testing.T) {
	_, err := New("ftp://example.test")
	assert.Error(t, err)
	_, err = New("localhost:8080")
	assert.Error(t, err)
}

func TestIsBodyError(t *testing.T) {
	tests := []struct {
		name        string
		contentType string
		body        string
		fail        bool
		want        bool
	}{
		{"text body", "text/html", "<h1>login</h1>", false, true},
		{"malformed json", "application/json", `{"loggedIn":`, false, true},
		{"mistyped json", "application/json", `{"loggedIn":"yes"}`, false, true},
		{"transport failure", "", "", true, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := newStubClient(t, func(*http.Request) (*http.Response, error) {
				if tt.fail {
					return nil, errors.New("connection refused")
				}
				return stubResponse(tt.contentType, tt.body), nil
			})

			_, err := c.Me(context.Background())
			require.Error(t, err)
			assert.Equal(t, tt.want, IsBodyError(err))

			var apiErr *Error
			assert.ErrorAs(t, err, &apiErr)
		})
	}
}
