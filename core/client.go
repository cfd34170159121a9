package core

import (
	"encoding/json"
	"encoding/xml"
	"fmt"
	"sort"
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/go-resty/resty/v2"
	"golang.org/x/exp/slices"
)

const (
	DefaultMetaURL  = "https://meta.quiltmc.org/v3/versions"
	DefaultMavenURL = "https://maven.quiltmc.org/repository/release"

	LoomPackage  = "org.quiltmc.loom"
	QfapiPackage = "org.quiltmc.quilted-fabric-api.quilted-fabric-api"
)

// MetaEntry is one version listed by the Quilt meta service. Feeds attach
// endpoint-specific extra fields; the stable flag is the only one the
// selection policy consults.
type MetaEntry struct {
	Version string `json:"version"`
	Stable  bool   `json:"stable"`
}

// Client fetches version listings from the Quilt meta service and maven
// repository. It holds only immutable configuration; every call is a
// single GET with no retries and no caching.
type Client struct {
	metaURL  string
	mavenURL string
	rest     *resty.Client
}

func NewClient(metaURL, mavenURL, userAgent string) *Client {
	return &Client{
		metaURL:  strings.TrimSuffix(metaURL, "/"),
		mavenURL: strings.TrimSuffix(mavenURL, "/"),
		rest:     resty.New().SetHeader("User-Agent", userAgent),
	}
}

func (c *Client) get(url string, contentType string) ([]byte, error) {
	resp, err := c.rest.R().SetHeader("Accept", contentType).Get(url)
	if err != nil {
		return nil, &TransportError{URL: url, Err: err}
	}
	if resp.IsError() {
		return nil, &TransportError{URL: url, Err: fmt.Errorf("unexpected status %s", resp.Status())}
	}
	return resp.Body(), nil
}

// Meta fetches a version listing from the meta service, e.g. "game",
// "loader" or "quilt-mappings/1.20.1". Entries are returned in feed order.
func (c *Client) Meta(path string) ([]MetaEntry, error) {
	url := c.metaURL + "/" + strings.TrimPrefix(path, "/")
	body, err := c.get(url, "application/json")
	if err != nil {
		return nil, err
	}
	var entries []MetaEntry
	if err := json.Unmarshal(body, &entries); err != nil {
		return nil, &DecodeError{URL: url, Err: err}
	}
	return entries, nil
}

type mavenMetadata struct {
	Versioning struct {
		Versions struct {
			Version []string `xml:"version"`
		} `xml:"versions"`
	} `xml:"versioning"`
}

// Maven fetches the published versions of a maven package, most recent
// first. Every listed version must parse as a semantic version; one bad
// entry fails the whole call.
func (c *Client) Maven(pkg string) ([]*semver.Version, error) {
	url := c.mavenURL + "/" + strings.ReplaceAll(pkg, ".", "/") + "/maven-metadata.xml"
	body, err := c.get(url, "application/xml")
	if err != nil {
		return nil, err
	}

	var metadata mavenMetadata
	if err := xml.Unmarshal(body, &metadata); err != nil {
		return nil, &DecodeError{URL: url, Err: err}
	}

	versions := make(semver.Collection, 0, len(metadata.Versioning.Versions.Version))
	for _, raw := range metadata.Versioning.Versions.Version {
		parsed, err := semver.StrictNewVersion(raw)
		if err != nil {
			return nil, &DecodeError{URL: url, Err: fmt.Errorf("version %q: %w", raw, err)}
		}
		versions = append(versions, parsed)
	}

	sort.Sort(versions)
	slices.Reverse(versions)

	return versions, nil
}
