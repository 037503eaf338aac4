package main

import (
	"context"
	"fmt"
	"io"
	"launcher/internal/config"
	"launcher/internal/lifecycle"
	"launcher/pkg/domain"
	"launcher/pkg/logger"
	"launcher/pkg/serrors"
	"launcher/pkg/storage"
	"os/signal"
	"strings"
	"syscall"
	"text/tabwriter"
	"time"

	"github.com/go-faster/jx"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// findDomain looks a domain up by id, falling back to its name.
func findDomain(ctx context.Context, strg storage.DomainStorage, ref string) (*domain.DomainRecord, error) {
	var (
		record *domain.DomainRecord
		err    error
	)
	if id, parseErr := domain.ParseDomainID(ref); parseErr == nil {
		record, err = strg.DomainByID(ctx, id)
	} else {
		record, err = strg.DomainByName(ctx, strings.TrimSuffix(strings.ToLower(ref), "."))
	}
	if err != nil {
		return nil, fmt.Errorf("could not get domain: %w", err)
	}
	if record == nil {
		return nil, serrors.With(serrors.ErrNotFound, "domain %s not found", ref)
	}

	return record, nil
}

// writeRecord prints record as indented JSON.
func writeRecord(w io.Writer, record *domain.DomainRecord) error {
	var e jx.Encoder
	e.SetIdent(2)
	e.Obj(func(e *jx.Encoder) {
		e.Field("id", func(e *jx.Encoder) { e.Str(record.ID.String()) })
		e.Field("name", func(e *jx.Encoder) { e.Str(record.Name) })
		e.Field("hostedZoneRef", func(e *jx.Encoder) { e.Str(record.HostedZoneRef) })
		e.Field("status", func(e *jx.Encoder) { e.Str(string(record.Status)) })
		e.Field("available", func(e *jx.Encoder) { e.Bool(record.Available) })
		e.Field("certificateRef", func(e *jx.Encoder) {
			if record.CertificateRef == nil {
				e.Null()

				return
			}
			e.Str(string(*record.CertificateRef))
		})
		e.Field("distributionRef", func(e *jx.Encoder) {
			if record.DistributionRef == nil {
				e.Null()

				return
			}
			e.Obj(func(e *jx.Encoder) {
				e.Field("id", func(e *jx.Encoder) { e.Str(record.DistributionRef.ID) })
				e.Field("endpointHostname", func(e *jx.Encoder) { e.Str(record.DistributionRef.EndpointHostname) })
			})
		})
		if record.LastError != "" {
			e.Field("lastError", func(e *jx.Encoder) { e.Str(record.LastError) })
		}
		e.Field("createdAt", func(e *jx.Encoder) { e.Str(record.CreatedAt.Format(time.RFC3339)) })
		e.Field("updatedAt", func(e *jx.Encoder) { e.Str(record.UpdatedAt.Format(time.RFC3339)) })
	})

	if _, err := fmt.Fprintln(w, e.String()); err != nil {
		return fmt.Errorf("could not write record: %w", err)
	}

	return nil
}

func addCommand(cfg *config.Config) *cobra.Command {
	var name, hostedZone string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Registers an idle domain served from a hosted zone",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			strg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			record, err := strg.StoreDomain(ctx, domain.DomainRecord{
				Name:          strings.TrimSuffix(strings.ToLower(name), "."),
				HostedZoneRef: hostedZone,
				Status:        domain.StatusIdle,
				Available:     true,
			})
			if err != nil {
				return fmt.Errorf("could not add domain: %w", err)
			}

			return writeRecord(cmd.OutOrStdout(), record)
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "Domain name, e.g. example.com")
	cmd.Flags().StringVar(&hostedZone, "hosted-zone", "", "ID of the hosted zone holding the domain's records")
	lo.Must0(cmd.MarkFlagRequired("name"))
	lo.Must0(cmd.MarkFlagRequired("hosted-zone"))

	return cmd
}

func listCommand(cfg *config.Config) *cobra.Command {
	var statuses []string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Lists domains and their lifecycle status",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			filter := lo.Map(statuses, func(s string, _ int) domain.Status { return domain.Status(strings.ToUpper(s)) })
			for _, s := range filter {
				if !s.Valid() {
					return serrors.With(serrors.ErrBadRequest, "unknown status %q", s)
				}
			}

			strg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			records, err := strg.ListDomains(ctx, filter...)
			if err != nil {
				return fmt.Errorf("could not list domains: %w", err)
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			_, _ = fmt.Fprintln(tw, "ID\tNAME\tSTATUS\tAVAILABLE\tENDPOINT\tLAST ERROR")
			for _, r := range records {
				endpoint := "-"
				if r.DistributionRef != nil {
					endpoint = r.DistributionRef.EndpointHostname
				}
				_, _ = fmt.Fprintf(tw, "%s\t%s\t%s\t%t\t%s\t%s\n",
					r.ID, r.Name, r.Status, r.Available, endpoint, r.LastError)
			}

			return tw.Flush() //nolint: wrapcheck
		},
	}
	cmd.Flags().StringSliceVar(&statuses, "status", nil, "Only list domains in these statuses")

	return cmd
}

func statusCommand(cfg *config.Config) *cobra.Command {
	var ref string

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Shows the lifecycle status of a domain",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			strg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			record, err := findDomain(ctx, strg, ref)
			if err != nil {
				return err
			}

			return writeRecord(cmd.OutOrStdout(), record)
		},
	}
	cmd.Flags().StringVar(&ref, "domain", "", "Domain ID or name")
	lo.Must0(cmd.MarkFlagRequired("domain"))

	return cmd
}

// operationCommand builds launch and unlaunch. Without --wait the operation
// is queued for the workers; with it, the operation runs in this process and
// an interrupt cancels it, releasing the domain.
func operationCommand(cfg *config.Config,
	use, short string,
	run func(c lifecycle.Controller, ctx context.Context, id domain.DomainID) (*domain.DomainRecord, error),
	enqueue func(c lifecycle.Controller, ctx context.Context, id domain.DomainID) error) *cobra.Command {
	var (
		ref  string
		wait bool
	)

	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			strg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			record, err := findDomain(ctx, strg, ref)
			if err != nil {
				return err
			}
			ctx = logger.WithDomain(ctx, record)
			controller := getController(ctx, cfg, strg, nil)

			if !wait {
				if err := enqueue(controller, ctx, record.ID); err != nil {
					return err
				}
				logger.Info(ctx, "operation queued", zap.String("operation", use))

				return nil
			}

			updated, err := run(controller, ctx, record.ID)
			if updated != nil {
				if writeErr := writeRecord(cmd.OutOrStdout(), updated); writeErr != nil {
					logger.Warn(ctx, "could not print domain", zap.Error(writeErr))
				}
			}

			return err
		},
	}
	cmd.Flags().StringVar(&ref, "domain", "", "Domain ID or name")
	cmd.Flags().BoolVar(&wait, "wait", false, "Run the operation in this process and wait for it to finish")
	lo.Must0(cmd.MarkFlagRequired("domain"))

	return cmd
}

func launchCommand(cfg *config.Config) *cobra.Command {
	return operationCommand(cfg, "launch", "Provisions certificate, distribution and alias of an idle domain",
		lifecycle.Controller.Launch, lifecycle.Controller.EnqueueLaunch)
}

func unlaunchCommand(cfg *config.Config) *cobra.Command {
	return operationCommand(cfg, "unlaunch", "Tears down distribution, certificate and alias of an active domain",
		lifecycle.Controller.Unlaunch, lifecycle.Controller.EnqueueUnlaunch)
}
