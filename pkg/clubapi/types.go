package clubapi

// Wire types for the club platform REST API. Field names follow the
// backend's French JSON schema verbatim so this file is the single place
// that knows about it.

// ============================================================================
// Auth Types
// ============================================================================

// LoginRequest is the body of POST /auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// TOTPLoginRequest completes an MFA-challenged login.
type TOTPLoginRequest struct {
	MFAToken string `json:"mfa_token"`
	Code     string `json:"code"`
}

// LoginResponse is the login endpoint response. Older backend builds return
// only the token; newer ones embed the user summary as well.
type LoginResponse struct {
	Token string       `json:"token"`
	User  *UserPayload `json:"user,omitempty"`
}

// UserPayload is the duck-typed user object embedded in login responses and
// returned from /auth/me. Role information may arrive as a single role
// string, a roles list, or Spring authorities; consumers must normalize.
type UserPayload struct {
	ID          int64            `json:"id,omitempty"`
	Nom         string           `json:"nom,omitempty"`
	Prenom      string           `json:"prenom,omitempty"`
	Email       string           `json:"email,omitempty"`
	Telephone   string           `json:"telephone,omitempty"`
	Role        string           `json:"role,omitempty"`
	Roles       []string         `json:"roles,omitempty"`
	Authorities []AuthorityValue `json:"authorities,omitempty"`
	Enabled     *bool            `json:"enabled,omitempty"`
}

// AuthorityValue mirrors Spring Security's granted-authority serialization.
type AuthorityValue struct {
	Authority string `json:"authority"`
}

// ============================================================================
// Club Types
// ============================================================================

// Club is a club summary as returned by list endpoints.
type Club struct {
	ID               int64  `json:"id"`
	Nom              string `json:"nom"`
	Description      string `json:"description,omitempty"`
	Category         string `json:"category,omitempty"`
	PathURL          string `json:"pathUrl,omitempty"`
	MembresCount     int    `json:"membresCount,omitempty"`
	ModerateurID     *int64 `json:"moderateurId,omitempty"`
	ModerateurNom    string `json:"moderateurNom,omitempty"`
	ModerateurPrenom string `json:"moderateurPrenom,omitempty"`
}

// ClubDetails is the full club view including its members and events.
type ClubDetails struct {
	Club
	Membres    []Member    `json:"membres,omitempty"`
	Evenements []Evenement `json:"evenements,omitempty"`
}

// Member is a club member summary.
type Member struct {
	ID     int64  `json:"id"`
	Nom    string `json:"nom"`
	Prenom string `json:"prenom"`
	Email  string `json:"email"`
}

// CreateClubRequest creates or updates a club.
type CreateClubRequest struct {
	Nom          string `json:"nom"`
	Description  string `json:"description"`
	Category     string `json:"category"`
	PathURL      string `json:"pathUrl,omitempty"`
	ModerateurID *int64 `json:"moderateurId,omitempty"`
}

// ============================================================================
// Event Types
// ============================================================================

// Event lifecycle states used by the backend.
const (
	EtatAVenir  = "A_VENIR"
	EtatEnCours = "EN_COURS"
	EtatTermine = "TERMINE"
)

// Evenement is an event as returned by the backend.
type Evenement struct {
	ID             int64    `json:"id"`
	Titre          string   `json:"titre"`
	Description    string   `json:"description,omitempty"`
	DateEvenement  string   `json:"dateEvenement"` // ISO yyyy-MM-dd
	Heure          string   `json:"heure,omitempty"`
	Lieu           string   `json:"lieu,omitempty"`
	EstPublic      bool     `json:"estPublic"`
	Etat           string   `json:"etat,omitempty"`
	ClubID         int64    `json:"clubId,omitempty"`
	ClubNom        string   `json:"clubNom,omitempty"`
	NombreInscrits int      `json:"nombreInscrits,omitempty"`
	DejaInscrit    bool     `json:"dejaInscrit,omitempty"`
	Inscrits       []Member `json:"inscrits,omitempty"`
}

// CreateEventRequest creates or updates an event.
type CreateEventRequest struct {
	Titre         string `json:"titre"`
	Description   string `json:"description"`
	DateEvenement string `json:"dateEvenement"`
	Heure         string `json:"heure,omitempty"`
	Lieu          string `json:"lieu,omitempty"`
	EstPublic     bool   `json:"estPublic"`
	Etat          string `json:"etat,omitempty"`
}

// ============================================================================
// Blog Types
// ============================================================================

// Blog is a single blog post in the club feed.
type Blog struct {
	ID                 int64         `json:"id"`
	Titre              string        `json:"titre"`
	Contenu            string        `json:"contenu,omitempty"`
	Categorie          string        `json:"categorie,omitempty"`
	ClubID             int64         `json:"clubId,omitempty"`
	ClubNom            string        `json:"clubNom,omitempty"`
	ImageURL           string        `json:"imageUrl,omitempty"`
	CreatedAt          string        `json:"createdAt,omitempty"`
	LikesCount         int           `json:"likesCount,omitempty"`
	LikedByCurrentUser bool          `json:"likedByCurrentUser,omitempty"`
	Comments           []BlogComment `json:"comments,omitempty"`
}

// BlogComment is a single comment on a blog post.
type BlogComment struct {
	ID        int64  `json:"id"`
	Contenu   string `json:"contenu"`
	AuteurNom string `json:"auteurNom,omitempty"`
	CreatedAt string `json:"createdAt,omitempty"`
}

// BlogPage is the paged feed wrapper returned by /blogs/club/all.
type BlogPage struct {
	Content       []Blog `json:"content"`
	TotalElements int    `json:"totalElements,omitempty"`
	TotalPages    int    `json:"totalPages,omitempty"`
	Number        int    `json:"number,omitempty"`
}

// CreateBlogRequest creates or updates a blog post.
type CreateBlogRequest struct {
	Titre     string `json:"titre"`
	Contenu   string `json:"contenu"`
	Categorie string `json:"categorie,omitempty"`
	ImageURL  string `json:"imageUrl,omitempty"`
}

// LikeResponse is returned from toggling a like.
type LikeResponse struct {
	Liked      bool `json:"liked"`
	LikesCount int  `json:"likesCount"`
}

// CommentRequest adds a comment to a blog post.
type CommentRequest struct {
	Contenu string `json:"contenu"`
}

// ============================================================================
// Inscription Types
// ============================================================================

// Demande is a pending membership request.
type Demande struct {
	ID          int64    `json:"id"`
	Nom         string   `json:"nom"`
	Prenom      string   `json:"prenom"`
	Email       string   `json:"email"`
	Telephone   string   `json:"telephone,omitempty"`
	Niveau      string   `json:"niveau,omitempty"`
	Motivation  string   `json:"motivation,omitempty"`
	DateDemande string   `json:"dateDemande,omitempty"`
	Club        *ClubRef `json:"club,omitempty"`
}

// ClubRef is a minimal club reference embedded in other resources.
type ClubRef struct {
	ID  int64  `json:"id"`
	Nom string `json:"nom"`
}

// ApplyRequest is a student's application to join the platform via a club.
type ApplyRequest struct {
	Nom        string `json:"nom"`
	Prenom     string `json:"prenom"`
	Email      string `json:"email"`
	Telephone  string `json:"telephone,omitempty"`
	Niveau     string `json:"niveau,omitempty"`
	Motivation string `json:"motivation,omitempty"`
	ClubID     int64  `json:"clubId"`
}

// PendingAccount is an approved applicant awaiting their interview decision.
type PendingAccount struct {
	UserID        int64  `json:"userId"`
	Prenom        string `json:"prenom"`
	Nom           string `json:"nom"`
	Email         string `json:"email"`
	DateEntretien string `json:"dateEntretien,omitempty"`
}

// ============================================================================
// User Admin Types
// ============================================================================

// User is a platform account as listed in the admin view.
type User struct {
	ID    int64  `json:"id"`
	Nom   string `json:"nom"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// CreateUserRequest creates or updates a platform account.
type CreateUserRequest struct {
	Nom       string `json:"nom"`
	Prenom    string `json:"prenom,omitempty"`
	Email     string `json:"email"`
	Telephone string `json:"telephone,omitempty"`
	Role      string `json:"role"`
	Password  string `json:"password,omitempty"`
}

// Moderateur is an account eligible to moderate a club.
type Moderateur struct {
	ID     int64  `json:"id"`
	Nom    string `json:"nom"`
	Prenom string `json:"prenom"`
	Email  string `json:"email"`
}

// ============================================================================
// Upload Types
// ============================================================================

// UploadResponse is returned from a multipart file upload.
type UploadResponse struct {
	PathURL string `json:"pathUrl"`
}
