package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/quiltmc-tools/quiltver/config"
	"github.com/quiltmc-tools/quiltver/core"
	"github.com/quiltmc-tools/quiltver/internal/shared"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var rootCmd = &cobra.Command{
	Use:   "quiltver [minecraft-version]",
	Short: "Generate a Gradle version catalog for the Quilt toolchain",
	Long: `Resolves a consistent set of Quilt toolchain versions (Minecraft, Quilt
Loader, Quilt Mappings, Loom and optionally Quilted Fabric API) and prints
them as a Gradle libs.versions.toml fragment.

Pass a Minecraft version to pin it, or omit it to use the latest stable
release reported by the Quilt meta service.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		client := core.NewClient(
			viper.GetString("meta-url"),
			viper.GetString("maven-url"),
			config.UserAgent(),
		)

		var explicit string
		if len(args) > 0 {
			explicit = args[0]
		}

		versions, err := resolve(client, explicit)
		if err != nil {
			shared.Exitln(err)
		}

		fmt.Print(versions.Catalog())
	},
}

func Execute() {
	rootCmd.Version = config.Version
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().String("meta-url", core.DefaultMetaURL, "Base URL of the Quilt version metadata service")
	_ = viper.BindPFlag("meta-url", rootCmd.Flags().Lookup("meta-url"))
	rootCmd.Flags().String("maven-url", core.DefaultMavenURL, "Base URL of the Quilt maven repository")
	_ = viper.BindPFlag("maven-url", rootCmd.Flags().Lookup("maven-url"))

	viper.SetEnvPrefix("QUILTVER")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
}

// resolve runs the fixed lookup sequence. Mappings and QFAPI depend on the
// resolved Minecraft version, so the calls stay strictly sequential; any
// failure aborts with no partial catalog.
func resolve(client *core.Client, explicit string) (core.Versions, error) {
	minecraft := explicit
	if minecraft == "" {
		gameFeed, err := client.Meta("game")
		if err != nil {
			return core.Versions{}, err
		}
		minecraft, err = core.SelectStableGame(gameFeed)
		if err != nil {
			return core.Versions{}, err
		}
		fmt.Fprintf(os.Stderr, "Using latest Minecraft version (%s)\n", minecraft)
	}

	loaderFeed, err := client.Meta("loader")
	if err != nil {
		return core.Versions{}, err
	}
	loader, err := core.SelectLoader(loaderFeed)
	if err != nil {
		return core.Versions{}, err
	}

	mappingsFeed, err := client.Meta("quilt-mappings/" + minecraft)
	if err != nil {
		return core.Versions{}, err
	}
	mappings, err := core.SelectMappings(mappingsFeed, minecraft)
	if err != nil {
		return core.Versions{}, err
	}

	loomVersions, err := client.Maven(core.LoomPackage)
	if err != nil {
		return core.Versions{}, err
	}
	loom, err := core.SelectLoom(loomVersions)
	if err != nil {
		return core.Versions{}, err
	}

	qfapiVersions, err := client.Maven(core.QfapiPackage)
	if err != nil {
		return core.Versions{}, err
	}
	qfapi, _ := core.SelectQfapi(qfapiVersions, minecraft)

	return core.NewVersions(minecraft, loader, mappings, loom, qfapi)
}
