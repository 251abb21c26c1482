package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"ResearchCatalog/internal/dashboard"
	"ResearchCatalog/internal/domain"
	"ResearchCatalog/internal/usecase"
)

type sortFlags struct {
	key  string
	desc bool
}

type sorter interface {
	SortBy(key string) error
	Sort() dashboard.SortState
}

// apply clicks the column until the requested direction is reached.
func (f sortFlags) apply(s sorter) error {
	if f.key == "" {
		return nil
	}
	want := dashboard.Asc
	if f.desc {
		want = dashboard.Desc
	}
	for i := 0; i < 2; i++ {
		if err := s.SortBy(f.key); err != nil {
			return err
		}
		if s.Sort().Dir == want {
			return nil
		}
	}
	return nil
}

func congressesCmd(opts *rootOptions) *cobra.Command {
	var (
		filter  domain.CongressFilter
		modal   string
		index   string
		sorting sortFlags
		asJSON  bool
		limit   int
	)

	cmd := &cobra.Command{
		Use:     "congresses",
		Aliases: []string{"congresos"},
		Short:   "Filter and list congresses",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := contextOf(cmd)
			application := opts.application()
			if err := application.Load(ctx); err != nil {
				return err
			}

			tracker := application.Tracker()
			tracker.Start(ctx)
			defer tracker.Close()
			tracker.TrackPageView("/"+usecase.ModuleCongresses, "Congresos", "")

			session := usecase.NewCongressSession(application.Current(), tracker)
			fields := []struct {
				field domain.FilterField
				value string
			}{
				{domain.FieldSearch, filter.Search},
				{domain.FieldCountry, filter.Country},
				{domain.FieldModality, modal},
				{domain.FieldIndexation, index},
			}
			for _, f := range fields {
				if f.value == "" {
					continue
				}
				if err := session.Set(f.field, f.value); err != nil {
					return err
				}
			}
			if len(filter.Categorias) > 0 {
				session.SetCategories(filter.Categorias)
			}
			// Line and sub-line after categories: category writes reset them.
			if filter.Linea != "" {
				if err := session.Set(domain.FieldLinea, filter.Linea); err != nil {
					return err
				}
			}
			if filter.Sublinea != "" {
				if err := session.Set(domain.FieldSublinea, filter.Sublinea); err != nil {
					return err
				}
			}
			for _, id := range filter.Careers {
				session.ToggleCareer(id)
			}

			if err := sorting.apply(session); err != nil {
				return err
			}
			view := session.View()

			if asJSON {
				return writeJSON(cmd.OutOrStdout(), view)
			}
			return writeCongressTable(cmd.OutOrStdout(), view, limit)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&filter.Search, "search", "", "free-text search")
	flags.StringVar(&filter.Country, "country", "", "country")
	flags.StringSliceVar(&filter.Categorias, "categoria", nil, "category (repeatable)")
	flags.StringVar(&filter.Linea, "linea", "", "research line")
	flags.StringVar(&filter.Sublinea, "sublinea", "", "research sub-line")
	flags.StringVar(&modal, "modality", "", "Presencial, Híbrido or Virtual")
	flags.StringVar(&index, "indexation", "", "Scopus, IEEE or WoS")
	flags.StringSliceVar(&filter.Careers, "career", nil, "career shortcut id (repeatable)")
	flags.StringVar(&sorting.key, "sort", "", "table sort column")
	flags.BoolVar(&sorting.desc, "desc", false, "sort descending")
	flags.BoolVar(&asJSON, "json", false, "print the full view model as JSON")
	flags.IntVar(&limit, "limit", 0, "maximum rows to print (0 = all)")
	return cmd
}

func journalsCmd(opts *rootOptions) *cobra.Command {
	var (
		filter  domain.JournalFilter
		sorting sortFlags
		asJSON  bool
		limit   int
	)

	cmd := &cobra.Command{
		Use:     "journals",
		Aliases: []string{"revistas"},
		Short:   "Filter and list journals",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := contextOf(cmd)
			application := opts.application()
			if err := application.Load(ctx); err != nil {
				return err
			}

			tracker := application.Tracker()
			tracker.Start(ctx)
			defer tracker.Close()
			tracker.TrackPageView("/"+usecase.ModuleJournals, "Revistas", "")

			session := usecase.NewJournalSession(application.Current(), tracker)
			fields := []struct {
				field domain.FilterField
				value string
			}{
				{domain.FieldSearch, filter.Search},
				{domain.FieldPublisher, filter.Publisher},
				{domain.FieldEnfoque, filter.Enfoque},
				{domain.FieldDisciplina, filter.Disciplina},
			}
			for _, f := range fields {
				if f.value == "" {
					continue
				}
				if err := session.Set(f.field, f.value); err != nil {
					return err
				}
			}

			if err := sorting.apply(session); err != nil {
				return err
			}
			view := session.View()

			if asJSON {
				return writeJSON(cmd.OutOrStdout(), view)
			}
			return writeJournalTable(cmd.OutOrStdout(), view, limit)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&filter.Search, "search", "", "free-text search")
	flags.StringVar(&filter.Publisher, "publisher", "", "publisher")
	flags.StringVar(&filter.Enfoque, "enfoque", "", "focus")
	flags.StringVar(&filter.Disciplina, "disciplina", "", "discipline")
	flags.StringVar(&sorting.key, "sort", "", "table sort column")
	flags.BoolVar(&sorting.desc, "desc", false, "sort descending")
	flags.BoolVar(&asJSON, "json", false, "print the full view model as JSON")
	flags.IntVar(&limit, "limit", 0, "maximum rows to print (0 = all)")
	return cmd
}

func careersCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "careers",
		Short: "List career shortcuts and the category each one selects",
		RunE: func(cmd *cobra.Command, args []string) error {
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tCAREER\tCATEGORY")
			for _, c := range domain.Careers() {
				fmt.Fprintf(tw, "%s\t%s\t%s\n", c.ID, c.Label, c.Categoria)
			}
			return tw.Flush()
		},
	}
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func writeCongressTable(w io.Writer, view usecase.CongressView, limit int) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "EVENTO\tPAIS\tMODALIDAD\tINICIO\tDEADLINE\tURGENCIA\tCATEGORIAS")
	for i, c := range view.Table {
		if limit > 0 && i >= limit {
			break
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			c.Evento, c.Pais, c.Modalidad, dash(c.FechaInicio), dash(c.Deadline), c.Urgency, strings.Join(c.Tags, ", "))
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	s := view.Stats
	_, err := fmt.Fprintf(w, "\n%d de %d congresos · urgentes %d · países %d · Scopus %d · IEEE %d · WoS %d\n",
		s.Total, view.Total, s.Urgent, s.Countries, s.Scopus, s.IEEE, s.WoS)
	return err
}

func writeJournalTable(w io.Writer, view usecase.JournalView, limit int) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "JOURNAL\tPUBLISHER\tISSN\tEISSN\tENFOQUE")
	for i, card := range view.Table {
		if limit > 0 && i >= limit {
			break
		}
		j := card.Journal
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", j.Journal, dash(j.Publisher), dash(j.ISSN), dash(j.EISSN), dash(j.Enfoque))
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "\n%d de %d revistas\n", len(view.Table), view.Total)
	return err
}

func dash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
