package core

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mavenXML(versions ...string) string {
	body := "<metadata>\n  <versioning>\n    <versions>\n"
	for _, v := range versions {
		body += fmt.Sprintf("      <version>%s</version>\n", v)
	}
	body += "    </versions>\n  </versioning>\n</metadata>\n"
	return body
}

func TestMetaPreservesFeedOrder(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/game", r.URL.Path)
		assert.Equal(t, "quiltver/test", r.Header.Get("User-Agent"))
		fmt.Fprint(w, `[
			{"version":"1.20.2-rc1","stable":false,"url":"ignored"},
			{"version":"1.20.1","stable":true}
		]`)
	}))
	defer server.Close()

	client := NewClient(server.URL, server.URL, "quiltver/test")

	entries, err := client.Meta("game")
	require.NoError(t, err)
	assert.Equal(t, []MetaEntry{
		{Version: "1.20.2-rc1", Stable: false},
		{Version: "1.20.1", Stable: true},
	}, entries)
}

func TestMetaTransportError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream broke", http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewClient(server.URL, server.URL, "quiltver/test")

	_, err := client.Meta("game")

	var transport *TransportError
	require.ErrorAs(t, err, &transport)
	assert.Contains(t, transport.URL, "/game")
}

func TestMetaUnreachableHost(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	client := NewClient(server.URL, server.URL, "quiltver/test")

	_, err := client.Meta("game")

	var transport *TransportError
	assert.ErrorAs(t, err, &transport)
}

func TestMetaDecodeError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, "<html>not json</html>")
	}))
	defer server.Close()

	client := NewClient(server.URL, server.URL, "quiltver/test")

	_, err := client.Meta("loader")

	var decode *DecodeError
	assert.ErrorAs(t, err, &decode)
}

func TestMavenReturnsDescendingVersions(t *testing.T) {
	raw := []string{"1.3.0", "1.4.0", "1.2.0", "1.4.0-beta.2"}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/org/quiltmc/loom/maven-metadata.xml", r.URL.Path)
		fmt.Fprint(w, mavenXML(raw...))
	}))
	defer server.Close()

	client := NewClient(server.URL, server.URL, "quiltver/test")

	versions, err := client.Maven("org.quiltmc.loom")
	require.NoError(t, err)

	// Adjacent pairs never ascend.
	for i := 0; i+1 < len(versions); i++ {
		assert.False(t, versions[i].LessThan(versions[i+1]),
			"versions[%d]=%s sorts below versions[%d]=%s", i, versions[i], i+1, versions[i+1])
	}

	// The result is a permutation of the feed, nothing dropped or duplicated.
	got := make([]string, 0, len(versions))
	for _, v := range versions {
		got = append(got, v.String())
	}
	assert.ElementsMatch(t, raw, got)

	assert.Equal(t, "1.4.0", versions[0].String())
}

func TestMavenStrictVersionParsing(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, mavenXML("1.3.0", "not-a-version"))
	}))
	defer server.Close()

	client := NewClient(server.URL, server.URL, "quiltver/test")

	_, err := client.Maven("org.quiltmc.loom")

	var decode *DecodeError
	assert.ErrorAs(t, err, &decode)
	assert.Contains(t, err.Error(), "not-a-version")
}

func TestMavenDecodeErrorOnMalformedXML(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, "{\"this\": \"is json\"}")
	}))
	defer server.Close()

	client := NewClient(server.URL, server.URL, "quiltver/test")

	_, err := client.Maven("org.quiltmc.loom")

	var decode *DecodeError
	assert.ErrorAs(t, err, &decode)
}

func TestMavenEmptyListing(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, mavenXML())
	}))
	defer server.Close()

	client := NewClient(server.URL, server.URL, "quiltver/test")

	versions, err := client.Maven("org.quiltmc.loom")
	require.NoError(t, err)
	assert.Empty(t, versions)
}
