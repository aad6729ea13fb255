package i18n

// Message keys shared across services. Handlers and usecases reference these
// constants rather than raw strings.
const (
	KeySignupSuccess          = "SIGNUP_SUCCESS"
	KeyEmailAlreadyUsed       = "EMAIL_ALREADY_USED"
	KeyEmailNotVerifiedResend = "EMAIL_NOT_VERIFIED_RESEND"
	KeyPhoneAlreadyUsed       = "PHONE_ALREADY_USED"
	KeyInvalidToken           = "INVALID_TOKEN"
	KeyVerificationSuccess    = "VERIFICATION_SUCCESS"
	KeyInvalidCredentials     = "INVALID_CREDENTIALS"
	KeyEmailNotVerified       = "EMAIL_NOT_VERIFIED"
	KeyLoginSuccess           = "LOGIN_SUCCESS"
	KeyUserNotFound           = "USER_NOT_FOUND"
	KeyInvalidUserID          = "INVALID_USER_ID"
	KeyResetEmailSent         = "RESET_EMAIL_SENT"
	KeyResetPasswordSuccess   = "RESET_PASSWORD_SUCCESS"
	KeyWeakPassword           = "WEAK_PASSWORD"
	KeyRoleNotFound           = "ROLE_NOT_FOUND"
	KeyRoleUpdated            = "ROLE_UPDATED"
	KeyUserDeleted            = "USER_DELETE_SUCCESS"

	KeyVerificationSubject = "VERIFICATION_SUBJECT"
	KeyVerificationBody    = "VERIFICATION_BODY"
	KeyResetSubject        = "RESET_SUBJECT"
	KeyResetBody           = "RESET_BODY"

	KeySlugAlreadyExists = "SLUG_ALREADY_EXISTS"
	KeyBrandNotFound     = "BRAND_NOT_FOUND"
	KeyBrandCreated      = "BRAND_CREATE_SUCCESS"
	KeyBrandUpdated      = "BRAND_UPDATE_SUCCESS"
	KeyBrandDeleted      = "BRAND_DELETE_SUCCESS"

	KeyCategoryNotFound = "CATEGORY_NOT_FOUND"
	KeyCategoryCreated  = "CATEGORY_CREATE_SUCCESS"
	KeyCategoryUpdated  = "CATEGORY_UPDATE_SUCCESS"
	KeyCategoryDeleted  = "CATEGORY_DELETE_SUCCESS"

	KeySupplierNameTaken = "SUPPLIER_ALREADY_EXISTS"
	KeySupplierNotFound  = "SUPPLIER_NOT_FOUND"
	KeySupplierCreated   = "SUPPLIER_CREATE_SUCCESS"
	KeySupplierUpdated   = "SUPPLIER_UPDATE_SUCCESS"
	KeySupplierDeleted   = "SUPPLIER_DELETE_SUCCESS"

	KeyVehicleNotFound = "VEHICLE_NOT_FOUND"
	KeyVehicleList     = "VEHICLE_LIST_SUCCESS"
	KeyVehicleDetail   = "VEHICLE_DETAIL_SUCCESS"
	KeyVehicleCreated  = "VEHICLE_CREATE_SUCCESS"
	KeyVehicleUpdated  = "VEHICLE_UPDATE_SUCCESS"
	KeyVehicleDeleted  = "VEHICLE_DELETE_SUCCESS"

	KeyTransactionNotFound = "TRANSACTION_NOT_FOUND"
	KeyTransactionDeleted  = "TRANSACTION_DELETE_SUCCESS"
	KeyMissingFields       = "MISSING_REQUIRED_FIELDS"
	KeyIDRequired          = "ID_REQUIRED"
	KeyIDAndStatusRequired = "ID_AND_STATUS_REQUIRED"
	KeyInternalError       = "INTERNAL_SERVER_ERROR"

	keyRolePrefix = "ROLE_"
)

// RoleKey builds the catalog key for a role name ("client" -> "ROLE_CLIENT").
func RoleKey(name string) string {
	upper := make([]byte, len(name))
	for i := 0; i < len(name); i++ {
		c := name[i]
		if c >= 'a' && c <= 'z' {
			c -= 'a' - 'A'
		}
		upper[i] = c
	}
	return keyRolePrefix + string(upper)
}

var catalog = map[string]map[string]string{
	"fr": {
		KeySignupSuccess:          "Inscription réussie. Veuillez vérifier votre email.",
		KeyEmailAlreadyUsed:       "Cet email est déjà utilisé.",
		KeyEmailNotVerifiedResend: "Email non vérifié. Un nouveau lien de vérification vous a été envoyé.",
		KeyPhoneAlreadyUsed:       "Ce numéro de téléphone est déjà utilisé.",
		KeyInvalidToken:           "Jeton invalide ou expiré.",
		KeyVerificationSuccess:    "Email vérifié avec succès.",
		KeyInvalidCredentials:     "Email ou mot de passe invalide.",
		KeyEmailNotVerified:       "Veuillez vérifier votre email avant de vous connecter.",
		KeyLoginSuccess:           "Connexion réussie.",
		KeyUserNotFound:           "Utilisateur introuvable.",
		KeyInvalidUserID:          "Identifiant utilisateur invalide.",
		KeyResetEmailSent:         "Si ce compte existe, un email de réinitialisation a été envoyé.",
		KeyResetPasswordSuccess:   "Mot de passe réinitialisé avec succès.",
		KeyWeakPassword:           "Le mot de passe doit contenir au moins 8 caractères, une majuscule, une minuscule et un chiffre ou symbole.",
		KeyRoleNotFound:           "Rôle introuvable.",
		KeyRoleUpdated:            "Rôle mis à jour avec succès.",
		KeyUserDeleted:            "Utilisateur supprimé avec succès.",
		KeyVerificationSubject:    "Vérifiez votre adresse email",
		KeyVerificationBody:       "Cliquez sur le lien pour vérifier votre adresse email : {url}",
		KeyResetSubject:           "Réinitialisation de votre mot de passe",
		KeyResetBody:              "Cliquez sur le lien pour réinitialiser votre mot de passe (valide 1 heure) : {url}",
		KeySlugAlreadyExists:      "Le slug {slug} existe déjà.",
		KeyBrandNotFound:          "Marque introuvable.",
		KeyBrandCreated:           "Marque créée avec succès.",
		KeyBrandUpdated:           "Marque mise à jour avec succès.",
		KeyBrandDeleted:           "Marque supprimée avec succès.",
		KeyCategoryNotFound:       "Catégorie introuvable.",
		KeyCategoryCreated:        "Catégorie créée avec succès.",
		KeyCategoryUpdated:        "Catégorie mise à jour avec succès.",
		KeyCategoryDeleted:        "Catégorie supprimée avec succès.",
		KeySupplierNameTaken:      "Ce fournisseur existe déjà.",
		KeySupplierNotFound:       "Fournisseur introuvable.",
		KeySupplierCreated:        "Fournisseur créé avec succès.",
		KeySupplierUpdated:        "Fournisseur mis à jour avec succès.",
		KeySupplierDeleted:        "Fournisseur supprimé avec succès.",
		KeyVehicleNotFound:        "Véhicule introuvable.",
		KeyVehicleList:            "Liste des véhicules récupérée avec succès.",
		KeyVehicleDetail:          "Véhicule récupéré avec succès.",
		KeyVehicleCreated:         "Véhicule créé avec succès.",
		KeyVehicleUpdated:         "Véhicule mis à jour avec succès.",
		KeyVehicleDeleted:         "Véhicule supprimé avec succès.",
		KeyTransactionNotFound:    "Transaction introuvable.",
		KeyTransactionDeleted:     "Transaction supprimée avec succès.",
		KeyMissingFields:          "Champs requis manquants.",
		KeyIDRequired:             "L'identifiant est requis.",
		KeyIDAndStatusRequired:    "L'identifiant et le statut sont requis.",
		KeyInternalError:          "Erreur interne du serveur.",
		"ROLE_CLIENT":             "Client",
		"ROLE_ADMIN":              "Administrateur",
		"ROLE_SELLER":             "Vendeur",
	},
	"en": {
		KeySignupSuccess:          "Registration successful. Please check your email.",
		KeyEmailAlreadyUsed:       "This email is already in use.",
		KeyEmailNotVerifiedResend: "Email not verified. A new verification link has been sent.",
		KeyPhoneAlreadyUsed:       "This phone number is already in use.",
		KeyInvalidToken:           "Invalid or expired token.",
		KeyVerificationSuccess:    "Email verified successfully.",
		KeyInvalidCredentials:     "Invalid email or password.",
		KeyEmailNotVerified:       "Please verify your email before logging in.",
		KeyLoginSuccess:           "Login successful.",
		KeyUserNotFound:           "User not found.",
		KeyInvalidUserID:          "Invalid user id.",
		KeyResetEmailSent:         "If this account exists, a reset email has been sent.",
		KeyResetPasswordSuccess:   "Password reset successfully.",
		KeyWeakPassword:           "Password must be at least 8 characters and contain an uppercase, a lowercase and a digit or symbol.",
		KeyRoleNotFound:           "Role not found.",
		KeyRoleUpdated:            "Role updated successfully.",
		KeyUserDeleted:            "User deleted successfully.",
		KeyVerificationSubject:    "Verify your email address",
		KeyVerificationBody:       "Click the link to verify your email address: {url}",
		KeyResetSubject:           "Reset your password",
		KeyResetBody:              "Click the link to reset your password (valid for 1 hour): {url}",
		KeySlugAlreadyExists:      "Slug {slug} already exists.",
		KeyBrandNotFound:          "Brand not found.",
		KeyBrandCreated:           "Brand created successfully.",
		KeyBrandUpdated:           "Brand updated successfully.",
		KeyBrandDeleted:           "Brand deleted successfully.",
		KeyCategoryNotFound:       "Category not found.",
		KeyCategoryCreated:        "Category created successfully.",
		KeyCategoryUpdated:        "Category updated successfully.",
		KeyCategoryDeleted:        "Category deleted successfully.",
		KeySupplierNameTaken:      "This supplier already exists.",
		KeySupplierNotFound:       "Supplier not found.",
		KeySupplierCreated:        "Supplier created successfully.",
		KeySupplierUpdated:        "Supplier updated successfully.",
		KeySupplierDeleted:        "Supplier deleted successfully.",
		KeyVehicleNotFound:        "Vehicle not found.",
		KeyVehicleList:            "Vehicle list retrieved successfully.",
		KeyVehicleDetail:          "Vehicle retrieved successfully.",
		KeyVehicleCreated:         "Vehicle created successfully.",
		KeyVehicleUpdated:         "Vehicle updated successfully.",
		KeyVehicleDeleted:         "Vehicle deleted successfully.",
		KeyTransactionNotFound:    "Transaction not found.",
		KeyTransactionDeleted:     "Transaction deleted successfully.",
		KeyMissingFields:          "Missing required fields.",
		KeyIDRequired:             "The id is required.",
		KeyIDAndStatusRequired:    "The id and status are required.",
		KeyInternalError:          "Internal server error.",
		"ROLE_CLIENT":             "Client",
		"ROLE_ADMIN":              "Administrator",
		"ROLE_SELLER":             "Seller",
	},
	"it": {
		KeySignupSuccess:          "Registrazione riuscita. Controlla la tua email.",
		KeyEmailAlreadyUsed:       "Questa email è già in uso.",
		KeyEmailNotVerifiedResend: "Email non verificata. Ti è stato inviato un nuovo link di verifica.",
		KeyPhoneAlreadyUsed:       "Questo numero di telefono è già in uso.",
		KeyInvalidToken:           "Token non valido o scaduto.",
		KeyVerificationSuccess:    "Email verificata con successo.",
		KeyInvalidCredentials:     "Email o password non validi.",
		KeyEmailNotVerified:       "Verifica la tua email prima di accedere.",
		KeyLoginSuccess:           "Accesso riuscito.",
		KeyUserNotFound:           "Utente non trovato.",
		KeyInvalidUserID:          "Identificativo utente non valido.",
		KeyResetEmailSent:         "Se questo account esiste, è stata inviata un'email di reimpostazione.",
		KeyResetPasswordSuccess:   "Password reimpostata con successo.",
		KeyWeakPassword:           "La password deve contenere almeno 8 caratteri, una maiuscola, una minuscola e una cifra o un simbolo.",
		KeyRoleNotFound:           "Ruolo non trovato.",
		KeyRoleUpdated:            "Ruolo aggiornato con successo.",
		KeyUserDeleted:            "Utente eliminato con successo.",
		KeyVerificationSubject:    "Verifica il tuo indirizzo email",
		KeyVerificationBody:       "Clicca sul link per verificare il tuo indirizzo email: {url}",
		KeyResetSubject:           "Reimposta la tua password",
		KeyResetBody:              "Clicca sul link per reimpostare la tua password (valido per 1 ora): {url}",
		KeySlugAlreadyExists:      "Lo slug {slug} esiste già.",
		KeyBrandNotFound:          "Marca non trovata.",
		KeyBrandCreated:           "Marca creata con successo.",
		KeyBrandUpdated:           "Marca aggiornata con successo.",
		KeyBrandDeleted:           "Marca eliminata con successo.",
		KeyCategoryNotFound:       "Categoria non trovata.",
		KeyCategoryCreated:        "Categoria creata con successo.",
		KeyCategoryUpdated:        "Categoria aggiornata con successo.",
		KeyCategoryDeleted:        "Categoria eliminata con successo.",
		KeySupplierNameTaken:      "Questo fornitore esiste già.",
		KeySupplierNotFound:       "Fornitore non trovato.",
		KeySupplierCreated:        "Fornitore creato con successo.",
		KeySupplierUpdated:        "Fornitore aggiornato con successo.",
		KeySupplierDeleted:        "Fornitore eliminato con successo.",
		KeyVehicleNotFound:        "Veicolo non trovato.",
		KeyVehicleList:            "Elenco dei veicoli recuperato con successo.",
		KeyVehicleDetail:          "Veicolo recuperato con successo.",
		KeyVehicleCreated:         "Veicolo creato con successo.",
		KeyVehicleUpdated:         "Veicolo aggiornato con successo.",
		KeyVehicleDeleted:         "Veicolo eliminato con successo.",
		KeyTransactionNotFound:    "Transazione non trovata.",
		KeyTransactionDeleted:     "Transazione eliminata con successo.",
		KeyMissingFields:          "Campi obbligatori mancanti.",
		KeyIDRequired:             "L'identificativo è obbligatorio.",
		KeyIDAndStatusRequired:    "L'identificativo e lo stato sono obbligatori.",
		KeyInternalError:          "Errore interno del server.",
		"ROLE_CLIENT":             "Cliente",
		"ROLE_ADMIN":              "Amministratore",
		"ROLE_SELLER":             "Venditore",
	},
}
