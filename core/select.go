package core

import (
	"strings"

	"github.com/Masterminds/semver/v3"
	"golang.org/x/exp/slices"
)

// SelectStableGame returns the first game feed entry flagged stable, in
// feed order.
func SelectStableGame(feed []MetaEntry) (string, error) {
	i := slices.IndexFunc(feed, func(e MetaEntry) bool { return e.Stable })
	if i < 0 {
		return "", &NoStableVersionError{}
	}
	return feed[i].Version, nil
}

// SelectLoader returns the first loader feed entry without a hyphen. A
// hyphen marks a beta or pre-release tag; the test is purely lexical.
func SelectLoader(feed []MetaEntry) (string, error) {
	i := slices.IndexFunc(feed, func(e MetaEntry) bool { return !strings.Contains(e.Version, "-") })
	if i < 0 {
		return "", &NoLoaderError{}
	}
	return feed[i].Version, nil
}

// SelectMappings returns the first entry of a mappings feed already scoped
// to a Minecraft version. The feed is ordered most recent first upstream,
// so no re-sorting happens here.
func SelectMappings(feed []MetaEntry, minecraft string) (string, error) {
	if len(feed) == 0 {
		return "", &NoMappingsError{Minecraft: minecraft}
	}
	return feed[0].Version, nil
}

// SelectLoom returns the most recent loom version of a descending list.
func SelectLoom(versions []*semver.Version) (string, error) {
	if len(versions) == 0 {
		return "", &NoLoomError{}
	}
	return versions[0].String(), nil
}

// SelectQfapi returns the highest Quilted Fabric API version built against
// the given Minecraft version, matching against build metadata only. The
// second return is false when no compatible build exists; QFAPI releases
// lag behind Minecraft releases, so that is not an error.
func SelectQfapi(versions []*semver.Version, minecraft string) (string, bool) {
	i := slices.IndexFunc(versions, func(v *semver.Version) bool {
		return strings.Contains(v.Metadata(), minecraft)
	})
	if i < 0 {
		return "", false
	}
	return versions[i].String(), true
}
