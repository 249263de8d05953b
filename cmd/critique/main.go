// Command critique drives the document-check form from the terminal: it
// collects file metadata and job posting texts, submits them to the dashboard
// API and prints the generated critique.
package main

import (
	"fmt"
	"mime"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"careercoach/dashboard-api/internal/config"
	"careercoach/dashboard-api/internal/form"
)

var (
	serverURL  string
	careerPath string
	resumePath string
	jdFiles    []string
	timeout    time.Duration
)

var rootCmd = &cobra.Command{
	Use:   "critique",
	Short: "Request an AI critique of career documents against job postings",
	Long: `Request an AI critique of career documents against job postings.

Only the file names and sizes of the documents are sent; the file contents
stay local. Up to five job posting texts can be supplied, one file each.`,
	RunE: run,
}

func init() {
	rootCmd.Flags().StringVar(&serverURL, "server", "", "dashboard API base URL (default from API_BASE_URL)")
	rootCmd.Flags().StringVar(&careerPath, "career", "", "path to the career history document (.pdf/.doc/.docx)")
	rootCmd.Flags().StringVar(&resumePath, "resume", "", "path to the resume document (.pdf/.doc/.docx)")
	rootCmd.Flags().StringSliceVar(&jdFiles, "jd-file", nil, "path to a job posting text file (repeatable, max 5)")
	rootCmd.Flags().DurationVar(&timeout, "timeout", form.DefaultTimeout, "request timeout")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	cfg := config.Load()
	if serverURL == "" {
		serverURL = cfg.Client.BaseURL
	}

	controller := form.NewController(form.NewClient(serverURL, timeout))

	if careerPath != "" {
		if err := setFile(controller, form.RoleCareer, careerPath); err != nil {
			return err
		}
	}
	if resumePath != "" {
		if err := setFile(controller, form.RoleResume, resumePath); err != nil {
			return err
		}
	}

	if len(jdFiles) > form.MaxJDEntries {
		fmt.Fprintf(os.Stderr, "only the first %d job postings are used\n", form.MaxJDEntries)
		jdFiles = jdFiles[:form.MaxJDEntries]
	}

	for i := 1; i < len(jdFiles); i++ {
		controller.AddJD()
	}
	entries := controller.JDs()
	for i, path := range jdFiles {
		data, err := os.ReadFile(path)
		if err != nil {
			return errors.Wrapf(err, "failed to read job posting %s", path)
		}
		controller.UpdateJD(entries[i].ID, string(data))
	}

	if err := controller.Submit(cmd.Context()); err != nil {
		if alert := controller.Alert(); alert != "" {
			return errors.New(alert)
		}
		return err
	}

	fmt.Println(controller.Result())
	return nil
}

func setFile(controller *form.Controller, role form.Role, path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return errors.Wrapf(err, "failed to stat %s", path)
	}

	return controller.SetFile(role, form.FileDescriptor{
		Name:     filepath.Base(path),
		Size:     info.Size(),
		MimeType: mime.TypeByExtension(strings.ToLower(filepath.Ext(path))),
	})
}
