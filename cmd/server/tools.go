package main

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/JaimeStill/docudash/internal/api"
	"github.com/JaimeStill/docudash/internal/documents"
	"github.com/JaimeStill/docudash/internal/infrastructure"
	"github.com/JaimeStill/docudash/pkg/openapi"
)

// newDomain builds the domain systems without starting the HTTP stack.
func newDomain(cmd *cobra.Command, opts *rootOptions) (*api.Domain, *api.Runtime, error) {
	infra, err := infrastructure.New(opts.cfg, infrastructure.Options{
		Verbose: opts.verbose,
		Output:  cmd.ErrOrStderr(),
	})
	if err != nil {
		return nil, nil, err
	}

	runtime := api.NewRuntime(opts.cfg, infra)
	domain, err := api.NewDomain(cmd.Context(), opts.cfg, runtime)
	if err != nil {
		return nil, nil, err
	}
	return domain, runtime, nil
}

func newModelsCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "models",
		Short: "Print the generation model chain in fallback order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			domain, _, err := newDomain(cmd, opts)
			if err != nil {
				return err
			}
			defer domain.Close()

			current := domain.Generation.Current()

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "RANK\tMODEL\tNAME\tAVAILABLE\t")
			for i, m := range domain.Generation.Models() {
				marker := ""
				if m.ID == current.ID {
					marker = "*"
				}
				fmt.Fprintf(tw, "%d\t%s\t%s\t%t\t%s\n", i+1, m.ID, m.Name, m.Available, marker)
			}
			return tw.Flush()
		},
	}
}

func newGenerateCommand(opts *rootOptions) *cobra.Command {
	var req documents.CreateRequest
	var docType, category string

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a document and add it to the stored collection",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			domain, _, err := newDomain(cmd, opts)
			if err != nil {
				return err
			}
			defer domain.Close()

			req.Type = documents.Type(docType)
			req.Category = documents.Category(category)

			domain.Documents.Initialize(cmd.Context())
			result, err := domain.Documents.Create(cmd.Context(), req)
			if err != nil {
				return err
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(documents.CreateResponse{
				Success:  true,
				Content:  result.Document.Content,
				Model:    result.Model,
				Document: result.Document,
			})
		},
	}

	cmd.Flags().StringVar(&req.Title, "title", "", "document title")
	cmd.Flags().StringVar(&req.Prompt, "prompt", "", "generation instructions")
	cmd.Flags().StringVar(&docType, "type", string(documents.TypeDocument), "document type (document, slide, spreadsheet)")
	cmd.Flags().StringVar(&category, "category", string(documents.CategoryBusiness), "category (business, personal, academic)")

	return cmd
}

func newOpenAPICommand(opts *rootOptions) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "openapi",
		Short: "Write the OpenAPI document for the API module",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			domain, runtime, err := newDomain(cmd, opts)
			if err != nil {
				return err
			}
			defer domain.Close()

			spec := api.Spec(opts.cfg, api.Groups(domain, runtime)...)
			if output != "" {
				return openapi.WriteJSON(spec, output)
			}

			return openapi.Write(cmd.OutOrStdout(), spec)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "write to file instead of stdout")
	return cmd
}
