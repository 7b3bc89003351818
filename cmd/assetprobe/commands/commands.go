// Copyright (c) 2026 Javier Podavini (YindSoft)
// Licensed under the MIT License. See LICENSE file in the project root.

package commands

import (
	"fmt"
	"io"
	"os"

	tinyandroid "github.com/YindSoft/tiny-android-interop"
	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	// Access these variables only from a main package:

	Root = &cobra.Command{
		Use:           "assetprobe",
		Short:         "Inspect the platform library's assets and host entry points",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !Debug {
				return nil
			}
			l, err := zap.NewDevelopment()
			if err != nil {
				return fmt.Errorf("logger: %w", err)
			}
			tinyandroid.SetLogger(l)
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = tinyandroid.Logger().Sync()
		},
	}

	Stat = &cobra.Command{
		Use:   "stat ASSET...",
		Short: "Print the size of each asset",
		Args:  cobra.MinimumNArgs(1),
		RunE:  stat,
	}

	Cat = &cobra.Command{
		Use:   "cat ASSET",
		Short: "Write an asset to stdout or --out",
		Args:  cobra.ExactArgs(1),
		RunE:  cat,
	}

	Host = &cobra.Command{
		Use:   "host",
		Short: "Resolve get_activity/get_javavm and attach a thread to the Java VM",
		Args:  cobra.NoArgs,
		RunE:  host,
	}

	PlatformLibrary string
	HostLibrary     string
	Debug           bool
	OutPath         string
)

func init() {
	Root.PersistentFlags().StringVar(&PlatformLibrary, "lib", tinyandroid.DefaultPlatformLibrary, "platform library exporting loadAsset")
	Root.PersistentFlags().StringVar(&HostLibrary, "host-lib", "", "library exporting get_activity and get_javavm (defaults to --lib)")
	Root.PersistentFlags().BoolVar(&Debug, "debug", false, "verbose logging and Java exception reports")
	Cat.Flags().StringVarP(&OutPath, "out", "o", "", "output file (default stdout)")

	Root.AddCommand(Stat, Cat, Host)
}

func options() *tinyandroid.Options {
	return &tinyandroid.Options{
		PlatformLibrary: PlatformLibrary,
		HostLibrary:     HostLibrary,
		Debug:           Debug,
	}
}

func stat(cmd *cobra.Command, args []string) error {
	loader := tinyandroid.NewAssetLoader(options())
	defer loader.Close()
	if err := loader.Open(); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	var failed int
	for _, name := range args {
		data, err := loader.ReadAsset(name)
		if err != nil {
			fmt.Fprintf(out, "%s\terror: %v\n", name, err)
			failed++
			continue
		}
		fmt.Fprintf(out, "%s\t%s\n", name, humanize.Bytes(uint64(len(data))))
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d assets could not be read", failed, len(args))
	}
	return nil
}

func cat(cmd *cobra.Command, args []string) error {
	loader := tinyandroid.NewAssetLoader(options())
	defer loader.Close()

	data, err := loader.ReadAsset(args[0])
	if err != nil {
		return err
	}

	var w io.Writer = cmd.OutOrStdout()
	if OutPath != "" {
		f, err := os.Create(OutPath)
		if err != nil {
			return err
		}
		defer f.Close()
		w = f
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("writing %s: %w", args[0], err)
	}
	if OutPath != "" {
		fmt.Fprintf(cmd.ErrOrStderr(), "wrote %s to %s\n", humanize.Bytes(uint64(len(data))), OutPath)
	}
	return nil
}

func host(cmd *cobra.Command, args []string) error {
	h, err := tinyandroid.OpenHost(options())
	if err != nil {
		return err
	}
	defer h.Close()

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "activity\t%#x\n", h.Activity())
	return h.WithThread(func(env tinyandroid.Env) error {
		fmt.Fprintf(out, "JNIEnv\t%#x\n", env.Pointer())
		return nil
	})
}
