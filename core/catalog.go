package core

import "fmt"

// Versions is one fully resolved toolchain snapshot. Qfapi may be empty
// when no Quilted Fabric API build targets the resolved Minecraft version;
// every other field is required.
type Versions struct {
	Minecraft string
	Loader    string
	Mappings  string
	Loom      string
	Qfapi     string
}

// NewVersions builds a snapshot, rejecting any missing required field.
func NewVersions(minecraft, loader, mappings, loom, qfapi string) (Versions, error) {
	required := []struct {
		name, value string
	}{
		{"minecraft", minecraft},
		{"loader", loader},
		{"mappings", mappings},
		{"loom", loom},
	}
	for _, field := range required {
		if field.value == "" {
			return Versions{}, fmt.Errorf("missing %s version", field.name)
		}
	}

	return Versions{
		Minecraft: minecraft,
		Loader:    loader,
		Mappings:  mappings,
		Loom:      loom,
		Qfapi:     qfapi,
	}, nil
}

const catalogTemplate = `[versions]
minecraft = %q
quilt_loader = %q
quilt_mappings = %q

%s

[libraries]
minecraft = { module = "com.mojang:minecraft", version.ref = "minecraft" }
quilt_loader = { module = "org.quiltmc:quilt-loader", version.ref = "quilt_loader" }
quilt_mappings = { module = "org.quiltmc:quilt-mappings", version.ref = "quilt_mappings" }

%squilted_fabric_api = { module = "org.quiltmc.quilted-fabric-api:quilted-fabric-api", version.ref = "quilted_fabric_api" }

[plugins]
quilt_loom = { id = "org.quiltmc.loom", version = %q }
`

// Catalog renders the snapshot as a Gradle libs.versions.toml fragment.
// The document is always syntactically complete: without a QFAPI version
// the library line is emitted commented out, with an advisory comment in
// place of the version entry.
func (v Versions) Catalog() string {
	qfapiVersion := "# Compatible Quilted Fabric API not found; check manually."
	qfapiComment := "# "
	if v.Qfapi != "" {
		qfapiVersion = fmt.Sprintf("quilted_fabric_api = %q", v.Qfapi)
		qfapiComment = ""
	}

	return fmt.Sprintf(catalogTemplate, v.Minecraft, v.Loader, v.Mappings, qfapiVersion, qfapiComment, v.Loom)
}
