package cmd

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/giantswarm/piceli/internal/config"
)

// commonFlags holds the raw flag values shared by every operation that
// loads an object set: module_path, namespace override, sub_elements.
// Each operation-specific command (plan/detail/run) additionally registers
// its own flags (-v, -a, -c) directly on top of these.
type commonFlags struct {
	modulePath string
	namespace  string
	subElems   bool

	parallelism      int
	perObjectTimeout time.Duration
	deployTimeout    time.Duration
	maxAttempts      int
	readinessPoll    time.Duration
}

func registerCommonFlags(cmd *cobra.Command) *commonFlags {
	f := &commonFlags{}
	cmd.Flags().StringVar(&f.modulePath, "module-path", ".", "comma-separated loader root(s)")
	cmd.Flags().StringVarP(&f.namespace, "namespace", "n", "", "target namespace override (empty: use each object's own)")
	cmd.Flags().BoolVar(&f.subElems, "sub-elements", false, "recurse into subdirectories of module-path")
	cmd.Flags().IntVar(&f.parallelism, "parallelism", 0, "max concurrent actions per level (0: unbounded)")
	cmd.Flags().DurationVar(&f.perObjectTimeout, "per-object-timeout", 0, "per-object apply+readiness budget (0: no deadline)")
	cmd.Flags().DurationVar(&f.deployTimeout, "deploy-timeout", 0, "overall deploy budget (0: no deadline)")
	cmd.Flags().IntVar(&f.maxAttempts, "max-attempts", 3, "transient-error retry cap per action")
	cmd.Flags().DurationVar(&f.readinessPoll, "readiness-poll", 2*time.Second, "readiness poll interval")
	return f
}

func (f *commonFlags) settings() config.Settings {
	return config.Settings{
		Namespace:        f.namespace,
		ModulePath:       config.ParseModulePath(f.modulePath),
		SubElements:      f.subElems,
		Parallelism:      f.parallelism,
		PerObjectTimeout: f.perObjectTimeout,
		DeployTimeout:    f.deployTimeout,
		MaxAttempts:      f.maxAttempts,
		ReadinessPoll:    f.readinessPoll,
	}
}
