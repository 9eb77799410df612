package seed

import (
	"github.com/shopspring/decimal"

	"vefa/internal/core"
)

// Default returns the reference purchase: a three-room flat in an off-plan
// residence, two steps completed, first payment made.
func Default() Snapshot {
	return Snapshot{
		Project: core.Project{
			Name:              "Résidence Les Jardins",
			Address:           "123 Avenue des Fleurs, 75000 Paris",
			Developer:         "Promoteur Immobilier XYZ",
			Price:             core.Euros(350000),
			AreaSquareMeters:  68,
			Rooms:             3,
			DeliveryDate:      core.NewDate(2025, 6, 15),
			NotaryAppointment: core.NewDate(2024, 4, 24),
		},
		Finance: core.FinancialPlan{
			PropertyPrice:     core.Euros(350000),
			AdditionalCosts:   core.Euros(25000),
			LoanAmount:        core.Euros(325000),
			LoanRate:          decimal.RequireFromString("3.2"),
			LoanDurationYears: 25,
			DownPayment:       core.Euros(50000),
			MonthlyPayment:    core.Euros(1580),
			PaidAmount:        core.Euros(60000),
			TotalInterest:     core.Euros(149000),
		},
		Payments:  defaultPayments(),
		Expenses:  defaultExpenses(),
		Documents: defaultDocuments(),
		Contacts:  defaultContacts(),
		Steps:     defaultSteps(),
	}
}

func defaultPayments() []core.Payment {
	return []core.Payment{
		{ID: 1, Title: "Dépôt de garantie", Amount: core.Euros(10000), DueDate: core.ParseDate("2024-02-15"),
			Description: "Dépôt de garantie à verser lors de la signature du contrat de réservation", Paid: true, Category: core.PaymentDeposit},
		{ID: 2, Title: "Frais de notaire", Amount: core.Euros(12500), DueDate: core.ParseDate("2024-04-24"),
			Description: "Frais de notaire pour la signature de l'acte authentique", Category: core.PaymentNotaryFees},
		{ID: 3, Title: "Appel de fonds - Fondations", Amount: core.Euros(35000), DueDate: core.ParseDate("2024-05-30"),
			Description: "Premier appel de fonds correspondant à 10% du prix de vente", Category: core.PaymentFundsCall},
		{ID: 4, Title: "Appel de fonds - Achèvement plancher bas RDC", Amount: core.Euros(70000), DueDate: core.ParseDate("2024-08-15"),
			Description: "Deuxième appel de fonds correspondant à 20% du prix de vente", Category: core.PaymentFundsCall},
		{ID: 5, Title: "Appel de fonds - Mise hors d'eau", Amount: core.Euros(70000), DueDate: core.ParseDate("2024-11-30"),
			Description: "Troisième appel de fonds correspondant à 20% du prix de vente", Category: core.PaymentFundsCall},
		{ID: 6, Title: "Appel de fonds - Achèvement cloisons", Amount: core.Euros(87500), DueDate: core.ParseDate("2025-02-28"),
			Description: "Quatrième appel de fonds correspondant à 25% du prix de vente", Category: core.PaymentFundsCall},
		{ID: 7, Title: "Appel de fonds - Mise à disposition", Amount: core.Euros(65000), DueDate: core.ParseDate("2025-06-15"),
			Description: "Dernier appel de fonds correspondant à 15% du prix de vente", Category: core.PaymentFundsCall},
	}
}

func defaultExpenses() []core.Expense {
	return []core.Expense{
		{ID: 1, Name: "Frais de notaire", Amount: core.Euros(12500), Category: core.ExpenseNotaryFees},
		{ID: 2, Name: "Frais de dossier bancaire", Amount: core.Euros(1200), Category: core.ExpenseFileFees, Paid: true},
		{ID: 3, Name: "Assurance emprunteur", Amount: core.Euros(7800), Category: core.ExpenseInsurance},
		{ID: 4, Name: "Garantie de prêt", Amount: core.Euros(3500), Category: core.ExpenseGuarantees, Paid: true},
		{ID: 5, Name: "Diagnostics techniques", Amount: core.Euros(800), Category: core.ExpenseOther, Paid: true},
	}
}

const kB = 1000

func defaultDocuments() []core.Document {
	doc := func(id int64, name string, cat core.DocumentCategory, date string, sizeKB int64, typ string) core.Document {
		return core.Document{ID: id, Name: name, Category: cat, Date: core.ParseDate(date), SizeBytes: sizeKB * kB, FileType: typ}
	}
	return []core.Document{
		doc(1, "Contrat de réservation", core.DocumentAdministrative, "15/02/2024", 2500, "pdf"),
		doc(2, "Dépôt de garantie", core.DocumentBanking, "16/02/2024", 1200, "pdf"),
		doc(3, "Offre de prêt", core.DocumentBanking, "05/03/2024", 3100, "pdf"),
		doc(4, "Plan de financement", core.DocumentBanking, "10/03/2024", 800, "xlsx"),
		doc(5, "Plans de l'appartement", core.DocumentTechnical, "18/02/2024", 4200, "pdf"),
		doc(6, "Descriptif technique", core.DocumentTechnical, "18/02/2024", 1700, "pdf"),
		doc(7, "Échéancier des paiements", core.DocumentDeveloper, "20/02/2024", 500, "pdf"),
		doc(8, "Attestation d'assurance", core.DocumentAdministrative, "22/02/2024", 900, "pdf"),
		doc(9, "Convocation signature notaire", core.DocumentNotary, "01/04/2024", 300, "pdf"),
		doc(10, "Relevé fiscal", core.DocumentAdministrative, "10/04/2024", 700, "pdf"),
		doc(11, "Déclaration revenus", core.DocumentAdministrative, "15/04/2024", 1100, "pdf"),
		doc(12, "Simulation de prêt", core.DocumentBanking, "25/02/2024", 400, "pdf"),
	}
}

func defaultContacts() []core.Contact {
	return []core.Contact{
		{ID: 1, Name: "Jean Dupont", Role: "Responsable de programme", Company: "Promoteur XYZ", Category: core.ContactDeveloper,
			Email: "jean.dupont@exemple.fr", Phone: "06 12 34 56 78", Notes: "Contact principal pour le suivi du programme immobilier"},
		{ID: 2, Name: "Marie Martin", Role: "Conseillère bancaire", Company: "Banque ABC", Category: core.ContactBank,
			Email: "marie.martin@banque.fr", Phone: "01 23 45 67 89", Notes: "A établi notre plan de financement et suit notre dossier de prêt"},
		{ID: 3, Name: "Pierre Legrand", Role: "Notaire", Company: "Office notarial Legrand & Associés", Category: core.ContactNotary,
			Email: "p.legrand@notaires.fr", Phone: "01 98 76 54 32"},
		{ID: 4, Name: "Sophie Petit", Role: "Architecte d'intérieur", Company: "Studio Design", Category: core.ContactArchitect,
			Email: "sophie.petit@studio.fr", Phone: "07 65 43 21 09", Notes: "Consultée pour l'aménagement intérieur"},
		{ID: 5, Name: "Thomas Richard", Role: "Conseiller commercial", Company: "Agence Immo Plus", Category: core.ContactRealEstate,
			Email: "thomas.richard@immoplus.fr", Phone: "06 98 76 54 32", Notes: "Nous a accompagnés lors des premières visites"},
	}
}

func defaultSteps() []core.PurchaseStep {
	return []core.PurchaseStep{
		{ID: 1, Name: "Réservation", Description: "Signature du contrat de réservation et versement du dépôt de garantie",
			Date: core.ParseDate("15/02/2024"), Completed: true, Documents: []core.StepDocument{
				{ID: 1, Name: "Contrat de réservation signé", Uploaded: true},
				{ID: 2, Name: "Justificatif de versement du dépôt de garantie", Uploaded: true},
			}},
		{ID: 2, Name: "Demande de prêt", Description: "Demande de prêt immobilier auprès des banques",
			Date: core.ParseDate("01/03/2024"), Completed: true, Documents: []core.StepDocument{
				{ID: 3, Name: "Offre de prêt", Uploaded: true},
				{ID: 4, Name: "Plan de financement", Uploaded: true},
			}},
		{ID: 3, Name: "Signature chez le notaire", Description: "Signature de l'acte authentique de vente",
			Date: core.ParseDate("24/04/2024"), Documents: []core.StepDocument{
				{ID: 5, Name: "Acte de vente"},
				{ID: 6, Name: "Attestation notariée"},
			}},
		{ID: 4, Name: "Appel de fonds - Fondations", Description: "Paiement de la première tranche",
			Date: core.ParseDate("30/05/2024"), Documents: []core.StepDocument{
				{ID: 7, Name: "Appel de fonds"},
				{ID: 8, Name: "Justificatif de paiement"},
			}},
		{ID: 5, Name: "Achèvement des travaux", Description: "Fin des travaux de construction",
			Date: core.ParseDate("01/06/2025"), Documents: []core.StepDocument{
				{ID: 9, Name: "Attestation d'achèvement des travaux"},
			}},
		{ID: 6, Name: "Livraison", Description: "Remise des clés et visite de réception",
			Date: core.ParseDate("15/06/2025"), Documents: []core.StepDocument{
				{ID: 10, Name: "Procès-verbal de livraison"},
				{ID: 11, Name: "Liste des réserves"},
			}},
	}
}
