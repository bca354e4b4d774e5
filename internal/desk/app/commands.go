package app

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/itbsclubs/clubdesk/internal/desk/domain"
	"github.com/itbsclubs/clubdesk/internal/desk/gate"
	"github.com/itbsclubs/clubdesk/internal/desk/nav"
	"github.com/itbsclubs/clubdesk/internal/desk/service"
	"github.com/itbsclubs/clubdesk/internal/desk/session"
	"github.com/itbsclubs/clubdesk/pkg/clubapi"
	"github.com/itbsclubs/clubdesk/pkg/idx"
	"github.com/itbsclubs/clubdesk/pkg/slogx"
)

func (app *Application) dispatch(cmd string, args []string) error {
	// Every log line and outgoing X-Request-ID of this invocation carries
	// the same operation ID.
	ctx := slogx.WithContext(context.Background(), app.logger.With("command", cmd))
	ctx = slogx.WithRequestID(ctx, idx.New().String())

	switch cmd {
	case "login":
		return app.cmdLogin(ctx, args)
	case "logout":
		return app.cmdLogout(ctx)
	case "whoami":
		return app.cmdWhoami(ctx, args)
	case "nav":
		return app.cmdNav(ctx)
	case "apply":
		return app.cmdApply(ctx, args)
	case "events":
		// The public feed sits next to the application form and needs no
		// session; everything else about events is gated.
		if len(args) > 0 && args[0] == "public" {
			events, err := app.services.PublicEvents(ctx)
			if err != nil {
				return app.navigate(err)
			}
			app.renderEvents(events)
			return nil
		}
		if ok, err := app.gatePage(ctx); err != nil || !ok {
			return err
		}
		return app.cmdEvents(ctx, args)
	case "upload", "clubs", "blogs", "demandes", "accounts", "users":
		if ok, err := app.gatePage(ctx); err != nil || !ok {
			return err
		}
		return app.dispatchResource(ctx, cmd, args)
	case "help", "-h", "--help":
		app.usage()
		return nil
	default:
		app.usage()
		return fmt.Errorf("commande inconnue : %s", cmd)
	}
}

// gatePage is the page-level access gate: the check a dashboard shell runs
// before rendering anything. Denial prints the navigation outcome and stops
// the command; allowed commands still re-check per request below.
func (app *Application) gatePage(ctx context.Context) (bool, error) {
	cred, profile, err := app.sessions.Current(ctx)
	if err != nil {
		return false, err
	}

	guard := gate.NewGuard()
	decision := guard.Resolve(cred, profile.Role, time.Now())
	if guard.State() == gate.StateDenied {
		switch decision.Kind {
		case gate.KindRedirect:
			fmt.Fprintf(app.out, "-> %s\n", decision.Path)
		case gate.KindNotice:
			fmt.Fprintln(app.out, decision.Notice)
		}
		return false, nil
	}
	return true, nil
}

func (app *Application) dispatchResource(ctx context.Context, cmd string, args []string) error {
	switch cmd {
	case "upload":
		return app.cmdUpload(ctx, args)
	case "clubs":
		return app.cmdClubs(ctx, args)
	case "blogs":
		return app.cmdBlogs(ctx, args)
	case "demandes":
		return app.cmdDemandes(ctx, args)
	case "accounts":
		return app.cmdAccounts(ctx, args)
	default:
		return app.cmdUsers(ctx, args)
	}
}

// navigate translates operation errors at the process boundary: a redirect
// decision is printed as navigation, everything else passes through.
func (app *Application) navigate(err error) error {
	var redirect *service.RedirectError
	if errors.As(err, &redirect) {
		fmt.Fprintf(app.out, "-> %s\n", redirect.Decision.Path)
		return nil
	}
	return err
}

// ============================================================================
// Session Commands
// ============================================================================

func (app *Application) cmdLogin(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return errors.New("usage : clubdesk login <email>")
	}

	fmt.Fprint(app.out, "Mot de passe : ")
	reader := bufio.NewReader(os.Stdin)
	password, err := reader.ReadString('\n')
	if err != nil {
		return fmt.Errorf("read password: %w", err)
	}

	res, err := app.sessions.Login(ctx, args[0], strings.TrimSpace(password))
	if errors.Is(err, session.ErrMFARequired) {
		return errors.New("double authentification requise : renseignez CLUBDESK_TOTP_SECRET")
	}
	if err != nil {
		return err
	}

	fmt.Fprintf(app.out, "Connecté : %s (%s)\n", res.Profile.DisplayName, res.Profile.Role)
	switch res.Decision.Kind {
	case gate.KindRedirect:
		fmt.Fprintf(app.out, "-> %s\n", res.Decision.Path)
	case gate.KindNotice:
		fmt.Fprintln(app.out, res.Decision.Notice)
	}
	return nil
}

func (app *Application) cmdLogout(ctx context.Context) error {
	if err := app.sessions.Logout(ctx); err != nil {
		return err
	}
	fmt.Fprintln(app.out, "Déconnecté.")
	return nil
}

func (app *Application) cmdWhoami(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("whoami", flag.ContinueOnError)
	refresh := fs.Bool("refresh", false, "resynchroniser le profil depuis le serveur")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cred, profile, err := app.sessions.Current(ctx)
	if err != nil {
		return err
	}
	if cred == nil {
		fmt.Fprintln(app.out, "Non connecté.")
		return nil
	}

	if *refresh {
		if profile, err = app.sessions.Refresh(ctx); err != nil {
			return err
		}
	}

	fmt.Fprintf(app.out, "%s <%s>\nRôle : %s\n", profile.DisplayName, profile.Email, profile.Role)
	if !profile.Enabled {
		fmt.Fprintln(app.out, gate.PendingActivationNotice)
	}
	if !cred.ExpiresAt.IsZero() {
		fmt.Fprintf(app.out, "Expire : %s\n", cred.ExpiresAt.Local().Format(time.RFC1123))
	}
	return nil
}

func (app *Application) cmdNav(ctx context.Context) error {
	_, profile, err := app.sessions.Current(ctx)
	if err != nil {
		return err
	}

	for _, entry := range nav.Build(profile.Role) {
		fmt.Fprintf(app.out, "%-24s %s\n", entry.Label, entry.Path)
	}
	return nil
}

// ============================================================================
// Application / Upload Commands
// ============================================================================

func (app *Application) cmdApply(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("apply", flag.ContinueOnError)
	var req clubapi.ApplyRequest
	fs.StringVar(&req.Nom, "nom", "", "nom de famille")
	fs.StringVar(&req.Prenom, "prenom", "", "prénom")
	fs.StringVar(&req.Email, "email", "", "adresse email")
	fs.StringVar(&req.Telephone, "telephone", "", "numéro de téléphone")
	fs.StringVar(&req.Niveau, "niveau", "", "niveau d'études")
	fs.StringVar(&req.Motivation, "motivation", "", "motivation")
	fs.Int64Var(&req.ClubID, "club", 0, "identifiant du club visé")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if req.Nom == "" || req.Prenom == "" || req.Email == "" || req.ClubID == 0 {
		return errors.New("usage : clubdesk apply -nom ... -prenom ... -email ... -club <id>")
	}

	return app.services.Apply(ctx, req)
}

func (app *Application) cmdUpload(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return errors.New("usage : clubdesk upload <fichier>")
	}

	f, err := os.Open(args[0])
	if err != nil {
		return err
	}
	defer f.Close()

	res, err := app.services.Upload(ctx, f.Name(), f)
	if err != nil {
		return app.navigate(err)
	}
	fmt.Fprintln(app.out, res.PathURL)
	return nil
}

// ============================================================================
// Resource Commands
// ============================================================================

func (app *Application) cmdClubs(ctx context.Context, args []string) error {
	sub, rest := subcommand(args, "list")
	switch sub {
	case "list":
		clubs, err := app.services.Clubs(ctx)
		if err != nil {
			return app.navigate(err)
		}
		app.renderClubs(clubs)
		return nil
	case "not-joined":
		clubs, err := app.services.NotJoined(ctx)
		if err != nil {
			return app.navigate(err)
		}
		app.renderClubs(clubs)
		return nil
	case "details":
		id, err := idArg(rest)
		if err != nil {
			return err
		}
		details, err := app.services.ClubDetails(ctx, id)
		if err != nil {
			return app.navigate(err)
		}
		app.renderClubDetails(details)
		return nil
	case "join":
		id, err := idArg(rest)
		if err != nil {
			return err
		}
		return app.navigate(app.services.JoinClub(ctx, id))
	case "my":
		club, err := app.services.MyClub(ctx)
		if err != nil {
			return app.navigate(err)
		}
		app.renderClubs([]clubapi.Club{*club})
		return nil
	case "members":
		members, err := app.services.MyClubMembers(ctx)
		if err != nil {
			return app.navigate(err)
		}
		app.renderMembers(members)
		return nil
	case "create", "update":
		fs := flag.NewFlagSet("clubs "+sub, flag.ContinueOnError)
		var req clubapi.CreateClubRequest
		var id int64
		var moderateur int64
		fs.StringVar(&req.Nom, "nom", "", "nom du club")
		fs.StringVar(&req.Description, "description", "", "description")
		fs.StringVar(&req.Category, "category", "", "catégorie")
		fs.Int64Var(&moderateur, "moderateur", 0, "identifiant du modérateur")
		if sub == "update" {
			fs.Int64Var(&id, "id", 0, "identifiant du club")
		}
		if err := fs.Parse(rest); err != nil {
			return err
		}
		if moderateur != 0 {
			req.ModerateurID = &moderateur
		}
		if sub == "update" {
			return app.navigate(app.services.UpdateClub(ctx, id, req))
		}
		_, err := app.services.CreateClub(ctx, req)
		return app.navigate(err)
	case "delete":
		id, err := idArg(rest)
		if err != nil {
			return err
		}
		return app.navigate(app.services.DeleteClub(ctx, id))
	default:
		return fmt.Errorf("sous-commande clubs inconnue : %s", sub)
	}
}

func (app *Application) cmdEvents(ctx context.Context, args []string) error {
	sub, rest := subcommand(args, "list")
	switch sub {
	case "list":
		events, err := app.eventsForRole(ctx)
		if err != nil {
			return app.navigate(err)
		}
		app.renderEvents(events)
		return nil
	case "calendar":
		fs := flag.NewFlagSet("events calendar", flag.ContinueOnError)
		now := time.Now()
		year := fs.Int("year", now.Year(), "année")
		month := fs.Int("month", int(now.Month()), "mois (1-12)")
		if err := fs.Parse(rest); err != nil {
			return err
		}
		events, err := app.eventsForRole(ctx)
		if err != nil {
			return app.navigate(err)
		}
		app.renderCalendar(service.MonthGrid(events, *year, time.Month(*month)), *year, time.Month(*month))
		return nil
	case "create", "update":
		fs := flag.NewFlagSet("events "+sub, flag.ContinueOnError)
		var req clubapi.CreateEventRequest
		var id int64
		fs.StringVar(&req.Titre, "titre", "", "titre")
		fs.StringVar(&req.Description, "description", "", "description")
		fs.StringVar(&req.DateEvenement, "date", "", "date (aaaa-mm-jj)")
		fs.StringVar(&req.Heure, "heure", "", "heure (hh:mm)")
		fs.StringVar(&req.Lieu, "lieu", "", "lieu")
		fs.BoolVar(&req.EstPublic, "public", false, "visible hors du club")
		if sub == "update" {
			fs.Int64Var(&id, "id", 0, "identifiant de l'événement")
			fs.StringVar(&req.Etat, "etat", "", "état (A_VENIR, EN_COURS, TERMINE)")
		}
		if err := fs.Parse(rest); err != nil {
			return err
		}
		if sub == "update" {
			return app.navigate(app.services.UpdateEvent(ctx, id, req))
		}
		_, err := app.services.CreateEvent(ctx, req)
		return app.navigate(err)
	case "delete":
		id, err := idArg(rest)
		if err != nil {
			return err
		}
		return app.navigate(app.services.DeleteEvent(ctx, id))
	case "archive":
		id, err := idArg(rest)
		if err != nil {
			return err
		}
		return app.navigate(app.services.ArchiveEvent(ctx, id))
	case "register":
		id, err := idArg(rest)
		if err != nil {
			return err
		}
		return app.navigate(app.services.RegisterForEvent(ctx, id))
	case "unregister":
		id, err := idArg(rest)
		if err != nil {
			return err
		}
		return app.navigate(app.services.UnregisterFromEvent(ctx, id))
	default:
		return fmt.Errorf("sous-commande events inconnue : %s", sub)
	}
}

// eventsForRole picks the event listing matching the current role, the same
// scoping each dashboard applies.
func (app *Application) eventsForRole(ctx context.Context) ([]clubapi.Evenement, error) {
	_, profile, err := app.sessions.Current(ctx)
	if err != nil {
		return nil, err
	}

	switch profile.Role {
	case domain.RoleModerator:
		return app.services.MyClubEvents(ctx)
	case domain.RoleAdmin:
		return app.services.Events(ctx)
	default:
		return app.services.StudentEvents(ctx)
	}
}

func (app *Application) cmdBlogs(ctx context.Context, args []string) error {
	sub, rest := subcommand(args, "feed")
	switch sub {
	case "feed":
		fs := flag.NewFlagSet("blogs feed", flag.ContinueOnError)
		page := fs.Int("page", 0, "page")
		size := fs.Int("size", 20, "taille de page")
		club := fs.Int64("club", 0, "filtrer par club")
		categorie := fs.String("categorie", "", "filtrer par catégorie")
		if err := fs.Parse(rest); err != nil {
			return err
		}
		feed, err := app.services.BlogFeed(ctx, *page, *size)
		if err != nil {
			return app.navigate(err)
		}
		app.renderBlogs(service.FilterFeed(feed.Content, *club, *categorie))
		return nil
	case "create", "update":
		fs := flag.NewFlagSet("blogs "+sub, flag.ContinueOnError)
		var req clubapi.CreateBlogRequest
		var id int64
		fs.StringVar(&req.Titre, "titre", "", "titre")
		fs.StringVar(&req.Contenu, "contenu", "", "contenu")
		fs.StringVar(&req.Categorie, "categorie", "", "catégorie")
		fs.StringVar(&req.ImageURL, "image", "", "URL de l'image")
		if sub == "update" {
			fs.Int64Var(&id, "id", 0, "identifiant de l'article")
		}
		if err := fs.Parse(rest); err != nil {
			return err
		}
		if sub == "update" {
			return app.navigate(app.services.UpdateBlog(ctx, id, req))
		}
		_, err := app.services.CreateBlog(ctx, req)
		return app.navigate(err)
	case "delete":
		id, err := idArg(rest)
		if err != nil {
			return err
		}
		return app.navigate(app.services.DeleteBlog(ctx, id))
	case "like":
		id, err := idArg(rest)
		if err != nil {
			return err
		}
		res, err := app.services.LikeBlog(ctx, id)
		if err != nil {
			return app.navigate(err)
		}
		if res.Liked {
			fmt.Fprintf(app.out, "Aimé (%d)\n", res.LikesCount)
		} else {
			fmt.Fprintf(app.out, "Je n'aime plus (%d)\n", res.LikesCount)
		}
		return nil
	case "comment":
		if len(rest) < 2 {
			return errors.New("usage : clubdesk blogs comment <id> <texte>")
		}
		id, err := idArg(rest[:1])
		if err != nil {
			return err
		}
		_, err = app.services.CommentBlog(ctx, id, strings.Join(rest[1:], " "))
		return app.navigate(err)
	default:
		return fmt.Errorf("sous-commande blogs inconnue : %s", sub)
	}
}

func (app *Application) cmdDemandes(ctx context.Context, args []string) error {
	sub, rest := subcommand(args, "list")
	switch sub {
	case "list":
		demandes, err := app.services.PendingDemandes(ctx)
		if err != nil {
			return app.navigate(err)
		}
		app.renderDemandes(demandes)
		return nil
	case "approve":
		id, err := idArg(rest)
		if err != nil {
			return err
		}
		return app.navigate(app.services.ApproveDemande(ctx, id))
	case "refuse":
		id, err := idArg(rest)
		if err != nil {
			return err
		}
		return app.navigate(app.services.RefuseDemande(ctx, id))
	default:
		return fmt.Errorf("sous-commande demandes inconnue : %s", sub)
	}
}

func (app *Application) cmdAccounts(ctx context.Context, args []string) error {
	sub, rest := subcommand(args, "list")
	switch sub {
	case "list":
		accounts, err := app.services.PendingAccounts(ctx)
		if err != nil {
			return app.navigate(err)
		}
		app.renderAccounts(accounts)
		return nil
	case "accept":
		id, err := idArg(rest)
		if err != nil {
			return err
		}
		return app.navigate(app.services.AcceptAccount(ctx, id))
	case "refuse":
		id, err := idArg(rest)
		if err != nil {
			return err
		}
		return app.navigate(app.services.RefuseAccount(ctx, id))
	default:
		return fmt.Errorf("sous-commande accounts inconnue : %s", sub)
	}
}

func (app *Application) cmdUsers(ctx context.Context, args []string) error {
	sub, rest := subcommand(args, "list")
	switch sub {
	case "list":
		users, err := app.services.Users(ctx)
		if err != nil {
			return app.navigate(err)
		}
		app.renderUsers(users)
		return nil
	case "moderators":
		mods, err := app.services.AvailableModerators(ctx)
		if err != nil {
			return app.navigate(err)
		}
		app.renderModerators(mods)
		return nil
	case "create", "update":
		fs := flag.NewFlagSet("users "+sub, flag.ContinueOnError)
		var req clubapi.CreateUserRequest
		var id int64
		fs.StringVar(&req.Nom, "nom", "", "nom")
		fs.StringVar(&req.Prenom, "prenom", "", "prénom")
		fs.StringVar(&req.Email, "email", "", "adresse email")
		fs.StringVar(&req.Telephone, "telephone", "", "numéro de téléphone")
		fs.StringVar(&req.Role, "role", "", "rôle (ADMIN, MODERATEUR, ETUDIANT)")
		fs.StringVar(&req.Password, "password", "", "mot de passe initial")
		if sub == "update" {
			fs.Int64Var(&id, "id", 0, "identifiant du compte")
		}
		if err := fs.Parse(rest); err != nil {
			return err
		}
		if sub == "update" {
			return app.navigate(app.services.UpdateUser(ctx, id, req))
		}
		_, err := app.services.CreateUser(ctx, req)
		return app.navigate(err)
	case "delete":
		id, err := idArg(rest)
		if err != nil {
			return err
		}
		return app.navigate(app.services.DeleteUser(ctx, id))
	case "assign":
		fs := flag.NewFlagSet("users assign", flag.ContinueOnError)
		userID := fs.Int64("user", 0, "identifiant du modérateur")
		clubID := fs.Int64("club", 0, "identifiant du club")
		if err := fs.Parse(rest); err != nil {
			return err
		}
		if *userID == 0 || *clubID == 0 {
			return errors.New("usage : clubdesk users assign -user <id> -club <id>")
		}
		return app.navigate(app.services.AssignClub(ctx, *userID, *clubID))
	default:
		return fmt.Errorf("sous-commande users inconnue : %s", sub)
	}
}

// ============================================================================
// Helpers
// ============================================================================

func subcommand(args []string, fallback string) (string, []string) {
	if len(args) == 0 {
		return fallback, nil
	}
	return args[0], args[1:]
}

func idArg(args []string) (int64, error) {
	if len(args) != 1 {
		return 0, errors.New("identifiant attendu")
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return 0, fmt.Errorf("identifiant invalide : %s", args[0])
	}
	return id, nil
}
