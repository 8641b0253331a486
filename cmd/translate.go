/*
Copyright © 2025 pagetran contributors

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/text/language"

	"github.com/almamala/pagetran/internal/config"
	"github.com/almamala/pagetran/internal/gitcheck"
	"github.com/almamala/pagetran/internal/orchestrator"
	"github.com/almamala/pagetran/internal/translator"
)

var (
	outputFile   string
	sourceLang   string
	targetLang   string
	fields       []string
	dryRun       bool
	skipGitCheck bool
	apiTier      string
	serviceName  string
	credentials  string
	keyFile      string
)

var translateCmd = &cobra.Command{
	Use:   "translate <input-file>",
	Short: "Translate a front-matter document",
	Long: `Translate the body and selected front-matter fields of a document.

The body is sent as markup (tags are preserved, no heading structure is
inferred) and Hugo shortcodes are shielded from the backend. The lang field,
when present, is rewritten to the short code of the target language.

Available services:
  - deepl   DeepL API (default; --tier selects the free or pro endpoint)
  - google  Google Cloud Translation (requires credentials)

Without --output the result is written to <target short code>/<basename>
next to the input file.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		inputPath := args[0]

		tier := translator.Tier(viper.GetString("translate.tier"))
		if tier != translator.TierFree && tier != translator.TierPro {
			return fmt.Errorf("invalid tier %q (expected free or pro)", tier)
		}
		if _, err := language.Parse(targetLang); err != nil {
			return fmt.Errorf("invalid target language %q: %w", targetLang, err)
		}
		if sourceLang != "" {
			if _, err := language.Parse(sourceLang); err != nil {
				return fmt.Errorf("invalid source language %q: %w", sourceLang, err)
			}
		}

		if !skipGitCheck {
			clean, err := gitcheck.Status(filepath.Dir(inputPath))
			switch {
			case err != nil:
				fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
			case !clean:
				return fmt.Errorf("working tree has uncommitted changes (use --skip-git-check to proceed anyway)")
			}
		}

		svcCfg := translator.ServiceConfig{Credentials: credentials}
		name := viper.GetString("translate.service")
		if name == "deepl" {
			authKey, err := config.ResolveAuthKey(os.LookupEnv, keyFile)
			if err != nil {
				return err
			}
			svcCfg.AuthKey = authKey
		}

		svc, err := buildService(name, svcCfg.AuthKey, tier)
		if err != nil {
			return err
		}

		orch := orchestrator.New(svc, svcCfg, os.Stderr)
		report, err := orch.Run(context.Background(), orchestrator.Config{
			InputPath:  inputPath,
			OutputPath: outputFile,
			SourceLang: sourceLang,
			TargetLang: targetLang,
			Fields:     fields,
			DryRun:     dryRun,
		})
		if err != nil {
			return err
		}

		if report.DryRun {
			fmt.Printf("Dry run: would translate ~%d characters\n", report.CharCount)
			fmt.Printf("Output would be written to %s\n", report.OutputPath)
			return nil
		}

		fmt.Printf("Successfully translated to %s (~%d characters)\n", report.OutputPath, report.CharCount)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(translateCmd)

	translateCmd.Flags().StringVarP(&outputFile, "output", "o", "", "Output file (default: <target short code>/<input basename>)")
	translateCmd.Flags().StringVarP(&sourceLang, "source", "s", "", "Source language code (empty = backend auto-detect)")
	translateCmd.Flags().StringVarP(&targetLang, "target", "t", "", "Target language code (required)")
	translateCmd.Flags().StringSliceVar(&fields, "fields", []string{"title"}, "Front-matter fields to translate (comma-separated)")
	translateCmd.Flags().BoolVar(&dryRun, "dry-run", false, "Report the character estimate and output path without translating")
	translateCmd.Flags().BoolVar(&skipGitCheck, "skip-git-check", false, "Skip the uncommitted-changes pre-flight check")
	translateCmd.Flags().StringVar(&apiTier, "tier", string(translator.TierFree), "DeepL API tier: free or pro")
	translateCmd.Flags().StringVar(&serviceName, "service", "deepl", "Translation service: deepl or google")
	translateCmd.Flags().StringVarP(&credentials, "credentials", "c", "", "Path to Google Cloud credentials (google service)")
	translateCmd.Flags().StringVar(&keyFile, "key-file", config.DefaultKeyFile, "Key-value file scanned for the auth key when the environment variable is unset")

	translateCmd.MarkFlagRequired("target")

	viper.BindPFlag("translate.tier", translateCmd.Flags().Lookup("tier"))
	viper.BindPFlag("translate.service", translateCmd.Flags().Lookup("service"))
}
