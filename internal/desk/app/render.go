package app

import (
	"fmt"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/itbsclubs/clubdesk/internal/desk/service"
	"github.com/itbsclubs/clubdesk/pkg/clubapi"
)

func (app *Application) table(render func(w *tabwriter.Writer)) {
	w := tabwriter.NewWriter(app.out, 0, 4, 2, ' ', 0)
	render(w)
	_ = w.Flush()
}

func (app *Application) renderClubs(clubs []clubapi.Club) {
	if len(clubs) == 0 {
		fmt.Fprintln(app.out, "Aucun club.")
		return
	}
	app.table(func(w *tabwriter.Writer) {
		fmt.Fprintln(w, "ID\tNOM\tCATÉGORIE\tMEMBRES\tMODÉRATEUR")
		for _, c := range clubs {
			moderateur := strings.TrimSpace(c.ModerateurPrenom + " " + c.ModerateurNom)
			fmt.Fprintf(w, "%d\t%s\t%s\t%d\t%s\n", c.ID, c.Nom, c.Category, c.MembresCount, moderateur)
		}
	})
}

func (app *Application) renderClubDetails(d *clubapi.ClubDetails) {
	fmt.Fprintf(app.out, "%s (#%d)\n", d.Nom, d.ID)
	if d.Description != "" {
		fmt.Fprintln(app.out, d.Description)
	}
	if len(d.Membres) > 0 {
		fmt.Fprintln(app.out, "\nMembres :")
		app.renderMembers(d.Membres)
	}
	if len(d.Evenements) > 0 {
		fmt.Fprintln(app.out, "\nÉvénements :")
		app.renderEvents(d.Evenements)
	}
}

func (app *Application) renderMembers(members []clubapi.Member) {
	if len(members) == 0 {
		fmt.Fprintln(app.out, "Aucun membre.")
		return
	}
	app.table(func(w *tabwriter.Writer) {
		fmt.Fprintln(w, "ID\tNOM\tEMAIL")
		for _, m := range members {
			fmt.Fprintf(w, "%d\t%s %s\t%s\n", m.ID, m.Prenom, m.Nom, m.Email)
		}
	})
}

func (app *Application) renderEvents(events []clubapi.Evenement) {
	if len(events) == 0 {
		fmt.Fprintln(app.out, "Aucun événement.")
		return
	}
	app.table(func(w *tabwriter.Writer) {
		fmt.Fprintln(w, "ID\tTITRE\tDATE\tLIEU\tÉTAT\tINSCRITS")
		for _, e := range events {
			fmt.Fprintf(w, "%d\t%s\t%s %s\t%s\t%s\t%d\n",
				e.ID, e.Titre, e.DateEvenement, e.Heure, e.Lieu, e.Etat, e.NombreInscrits)
		}
	})
}

func (app *Application) renderCalendar(weeks []service.CalendarWeek, year int, month time.Month) {
	fmt.Fprintf(app.out, "%s %d\n", month, year)
	app.table(func(w *tabwriter.Writer) {
		fmt.Fprintln(w, "LUN\tMAR\tMER\tJEU\tVEN\tSAM\tDIM")
		for _, week := range weeks {
			cells := make([]string, 7)
			for i, day := range week {
				if !day.InGrid {
					cells[i] = "."
					continue
				}
				cells[i] = fmt.Sprintf("%d", day.Date.Day())
				if n := len(day.Events); n > 0 {
					cells[i] += fmt.Sprintf(" (%d)", n)
				}
			}
			fmt.Fprintln(w, strings.Join(cells, "\t"))
		}
	})
}

func (app *Application) renderBlogs(posts []clubapi.Blog) {
	if len(posts) == 0 {
		fmt.Fprintln(app.out, "Aucun article.")
		return
	}
	app.table(func(w *tabwriter.Writer) {
		fmt.Fprintln(w, "ID\tTITRE\tCLUB\tCATÉGORIE\tJ'AIME")
		for _, p := range posts {
			fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%d\n", p.ID, p.Titre, p.ClubNom, p.Categorie, p.LikesCount)
		}
	})
}

func (app *Application) renderDemandes(demandes []clubapi.Demande) {
	if len(demandes) == 0 {
		fmt.Fprintln(app.out, "Aucune demande en attente.")
		return
	}
	app.table(func(w *tabwriter.Writer) {
		fmt.Fprintln(w, "ID\tNOM\tEMAIL\tNIVEAU\tCLUB\tDATE")
		for _, d := range demandes {
			club := ""
			if d.Club != nil {
				club = d.Club.Nom
			}
			fmt.Fprintf(w, "%d\t%s %s\t%s\t%s\t%s\t%s\n",
				d.ID, d.Prenom, d.Nom, d.Email, d.Niveau, club, d.DateDemande)
		}
	})
}

func (app *Application) renderAccounts(accounts []clubapi.PendingAccount) {
	if len(accounts) == 0 {
		fmt.Fprintln(app.out, "Aucun compte en attente.")
		return
	}
	app.table(func(w *tabwriter.Writer) {
		fmt.Fprintln(w, "ID\tNOM\tEMAIL\tENTRETIEN")
		for _, a := range accounts {
			fmt.Fprintf(w, "%d\t%s %s\t%s\t%s\n", a.UserID, a.Prenom, a.Nom, a.Email, a.DateEntretien)
		}
	})
}

func (app *Application) renderUsers(users []clubapi.User) {
	if len(users) == 0 {
		fmt.Fprintln(app.out, "Aucun compte.")
		return
	}
	app.table(func(w *tabwriter.Writer) {
		fmt.Fprintln(w, "ID\tNOM\tEMAIL\tRÔLE")
		for _, u := range users {
			fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", u.ID, u.Nom, u.Email, u.Role)
		}
	})
}

func (app *Application) renderModerators(mods []clubapi.Moderateur) {
	if len(mods) == 0 {
		fmt.Fprintln(app.out, "Aucun modérateur disponible.")
		return
	}
	app.table(func(w *tabwriter.Writer) {
		fmt.Fprintln(w, "ID\tNOM\tEMAIL")
		for _, m := range mods {
			fmt.Fprintf(w, "%d\t%s %s\t%s\n", m.ID, m.Prenom, m.Nom, m.Email)
		}
	})
}
