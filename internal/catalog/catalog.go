package catalog

import "strings"

// CategoryAll is the catch-all category label. Both CategoryAll and the
// empty string match every service.
const CategoryAll = "Tous"

// Default returns the static service catalog. Loaded once at startup and
// treated as immutable for the session.
func Default() []Service {
	return []Service{
		{
			ID:              "1",
			Name:            "Consultation Stratégie Digitale",
			Category:        "Conseil",
			DurationMinutes: 60,
			Price:           150,
			Description:     "Analyse complète de vos besoins digitaux et recommandations stratégiques",
			Features:        []string{"Audit digital", "Roadmap personnalisée", "Recommandations techniques"},
		},
		{
			ID:              "2",
			Name:            "Développement Site Web",
			Category:        "Développement",
			DurationMinutes: 90,
			Price:           0,
			Description:     "Discussion détaillée pour votre projet de site web sur mesure",
			Features:        []string{"Analyse des besoins", "Devis personnalisé", "Planning projet"},
		},
		{
			ID:              "3",
			Name:            "Application Mobile",
			Category:        "Développement",
			DurationMinutes: 90,
			Price:           0,
			Description:     "Conception et développement d'applications mobiles natives ou hybrides",
			Features:        []string{"Étude de faisabilité", "Prototype", "Devis détaillé"},
		},
		{
			ID:              "4",
			Name:            "E-commerce & Marketplace",
			Category:        "E-commerce",
			DurationMinutes: 75,
			Price:           0,
			Description:     "Solutions e-commerce complètes avec paiements et gestion des stocks",
			Features:        []string{"Analyse concurrentielle", "Architecture technique", "Intégrations"},
		},
		{
			ID:              "5",
			Name:            "Support Technique",
			Category:        "Support",
			DurationMinutes: 30,
			Price:           80,
			Description:     "Assistance technique et résolution de problèmes",
			Features:        []string{"Diagnostic", "Résolution rapide", "Recommandations"},
		},
		{
			ID:              "6",
			Name:            "Formation Technique",
			Category:        "Formation",
			DurationMinutes: 120,
			Price:           200,
			Description:     "Formation personnalisée sur les technologies web modernes",
			Features:        []string{"Contenu sur mesure", "Exercices pratiques", "Support post-formation"},
		},
	}
}

// Categories returns the category labels of the default catalog, with the
// catch-all label first.
func Categories() []string {
	return []string{CategoryAll, "Conseil", "Développement", "E-commerce", "Support", "Formation"}
}

// Filter returns the subsequence of services matching the free-text search
// and category, preserving catalog order. The search is case-insensitive
// and matches against name and description.
func Filter(services []Service, search, category string) []Service {
	search = strings.ToLower(search)

	matched := make([]Service, 0, len(services))

	for _, service := range services {
		if search != "" &&
			!strings.Contains(strings.ToLower(service.Name), search) &&
			!strings.Contains(strings.ToLower(service.Description), search) {
			continue
		}

		if category != "" && category != CategoryAll && category != service.Category {
			continue
		}

		matched = append(matched, service)
	}

	return matched
}

// ByID looks up a service by identity.
func ByID(services []Service, id string) (Service, bool) {
	for _, service := range services {
		if service.ID == id {
			return service, true
		}
	}

	return Service{}, false
}
