package main

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func server(status int, body string) *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
}

func TestBodiesEqualIgnoresKeyOrder(t *testing.T) {
	assert.True(t, bodiesEqual([]byte(`{"a":1,"b":"x"}`), []byte(`{ "b": "x", "a": 1 }`)))
	assert.False(t, bodiesEqual([]byte(`{"scan_count":6}`), []byte(`{"scan_count":7}`)))
	assert.False(t, bodiesEqual([]byte(`plain`), []byte(`other`)))
}

func TestCompareProbe(t *testing.T) {
	legacy := server(http.StatusOK, `{"student_id":"42","scan_count":6}`)
	defer legacy.Close()
	same := server(http.StatusOK, `{"scan_count":6,"student_id":"42"}`)
	defer same.Close()
	changed := server(http.StatusNotFound, `{"error":"Student 42 not found"}`)
	defer changed.Close()

	p := probe{Name: "student 42", Path: "/api/student?id=42"}

	res := compareProbe(http.DefaultClient, same.URL, legacy.URL, p)
	require.NoError(t, res.Error)
	assert.False(t, res.diff())

	res = compareProbe(http.DefaultClient, changed.URL, legacy.URL, p)
	require.NoError(t, res.Error)
	assert.True(t, res.diff())

	var out bytes.Buffer
	printReport(&out, []comparison{res})
	assert.Contains(t, out.String(), "[DIFF] student 42")
}

func TestStatusOnlyProbeIgnoresBody(t *testing.T) {
	legacy := server(http.StatusOK, "Lanyard API is running")
	defer legacy.Close()
	goSrv := server(http.StatusOK, "✅ Lanyard API is running and connected to Google Sheets.")
	defer goSrv.Close()

	res := compareProbe(http.DefaultClient, goSrv.URL, legacy.URL, probe{Name: "home", Path: "/", StatusOnly: true})
	assert.False(t, res.diff())
}

func TestLoadIDs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ids.txt")
	require.NoError(t, os.WriteFile(path, []byte("# roster sample\n42\n\n 007 \n"), 0o600))

	ids, err := loadIDs(path, []string{"1"})
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "42", "007"}, ids)

	assert.Len(t, probes(ids), 6)
}
