package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"vefa/internal/core"
	"vefa/internal/services"
)

func newTable(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
}

func check(done bool) string {
	if done {
		return "x"
	}
	return " "
}

func writeSummary(w io.Writer, st styles, ov services.Overview, fin services.FinanceSummary) error {
	p := ov.Project
	fmt.Fprintln(w, st.title.Render(p.Name))
	tw := newTable(w)
	fmt.Fprintf(tw, "Adresse\t%s\n", p.Address)
	fmt.Fprintf(tw, "Promoteur\t%s\n", p.Developer)
	fmt.Fprintf(tw, "Prix\t%s\n", core.FormatEuros(p.Price))
	fmt.Fprintf(tw, "Surface\t%d m² · %d pièces\n", p.AreaSquareMeters, p.Rooms)
	fmt.Fprintf(tw, "Livraison\t%s\n", p.DeliveryDate.Long())
	fmt.Fprintf(tw, "Avancement\t%d / %d étapes terminées · %s %%\n",
		ov.CompletedSteps, ov.TotalSteps, core.FormatPercent(ov.Completion))
	if ov.NextPayment != nil {
		fmt.Fprintf(tw, "Prochain paiement\t%s · %s · %s\n",
			ov.NextPayment.Title, core.FormatEuros(ov.NextPayment.Amount), ov.NextPayment.DueDate.Long())
	} else {
		fmt.Fprintf(tw, "Prochain paiement\taucun\n")
	}
	fmt.Fprintf(tw, "Documents\t%d\n", ov.DocumentsCount)
	fmt.Fprintf(tw, "Contacts\t%d\n", ov.ContactsCount)
	fmt.Fprintf(tw, "Coût total\t%s\n", core.FormatEuros(fin.TotalPrice))
	fmt.Fprintf(tw, "Déjà payé\t%s (%s %% du prix)\n", core.FormatEuros(fin.Plan.PaidAmount), core.FormatPercent(fin.PaidPercentage))
	fmt.Fprintf(tw, "Frais annexes payés\t%s / %s\n", core.FormatEuros(fin.ExpensesPaid), core.FormatEuros(fin.ExpensesTotal))
	return tw.Flush()
}

func writePayments(w io.Writer, st styles, s services.ScheduleSummary) error {
	fmt.Fprintln(w, st.title.Render("Échéancier"))
	tw := newTable(w)
	fmt.Fprintln(tw, "ID\tPAYÉ\tÉCHÉANCE\tMONTANT\tCATÉGORIE\tLIBELLÉ")
	for _, p := range s.Payments {
		fmt.Fprintf(tw, "%d\t[%s]\t%s\t%s\t%s\t%s\n",
			p.ID, check(p.Paid), p.DueDate.Short(), core.FormatEuros(p.Amount), p.Category, p.Title)
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "\n%s · %s\n",
		st.done.Render(fmt.Sprintf("%d / %d payés · %s / %s · %s %% payé",
			s.PaidCount, len(s.Payments), core.FormatEuros(s.Paid), core.FormatEuros(s.Total),
			core.FormatPercent(s.PaidPercentage))),
		st.muted.Render("reste "+core.FormatEuros(s.Remaining)))
	return err
}

func writeDocuments(w io.Writer, st styles, v services.DocumentsView) error {
	fmt.Fprintln(w, st.title.Render("Documents"))
	tw := newTable(w)
	fmt.Fprintln(tw, "ID\tDATE\tTAILLE\tTYPE\tCATÉGORIE\tNOM")
	for _, d := range v.Documents {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\n",
			d.ID, d.Date.Short(), core.FormatSize(d.SizeBytes), d.FileType, d.Category, d.Name)
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	_, err := fmt.Fprintln(w, "\n"+st.muted.Render(fmt.Sprintf("%d document(s) sur %d · %s · %s",
		len(v.Documents), v.Total, v.Category, core.FormatSize(v.TotalSize))))
	return err
}

func writeContacts(w io.Writer, st styles, v services.ContactsView) error {
	fmt.Fprintln(w, st.title.Render("Contacts"))
	tw := newTable(w)
	fmt.Fprintln(tw, "ID\tNOM\tRÔLE\tSOCIÉTÉ\tCATÉGORIE\tTÉLÉPHONE\tEMAIL")
	for _, c := range v.Contacts {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\t%s\n",
			c.ID, c.Name, c.Role, c.Company, c.Category, c.Phone, c.Email)
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	_, err := fmt.Fprintln(w, "\n"+st.muted.Render(fmt.Sprintf("%d contact(s) sur %d · %s", len(v.Contacts), v.Total, v.Category)))
	return err
}

func writeSteps(w io.Writer, st styles, v services.StepsView) error {
	fmt.Fprintln(w, st.title.Render("Étapes"))
	tw := newTable(w)
	fmt.Fprintln(tw, "ID\tFAIT\tDATE\tDOCUMENTS\tÉTAPE")
	for _, sp := range v.Steps {
		fmt.Fprintf(tw, "%d\t[%s]\t%s\t%d/%d\t%s\n",
			sp.Step.ID, check(sp.Step.Completed), sp.Step.Date.Short(), sp.Uploaded, sp.Expected, sp.Step.Name)
		for _, d := range sp.Step.Documents {
			fmt.Fprintf(tw, "\t\t\t[%s]\t  %s\n", check(d.Uploaded), d.Name)
		}
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	_, err := fmt.Fprintln(w, "\n"+st.done.Render(fmt.Sprintf("%d / %d étapes terminées · %s %%",
		v.Completed, v.Total, core.FormatPercent(v.Completion))))
	return err
}
