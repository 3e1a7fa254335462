package fixtures

import (
	"time"

	"github.com/constructor-app/constructor-backend-go/internal/domain/document"
	"github.com/constructor-app/constructor-backend-go/internal/domain/invoice"
	"github.com/constructor-app/constructor-backend-go/internal/domain/material"
	"github.com/constructor-app/constructor-backend-go/internal/domain/note"
	"github.com/constructor-app/constructor-backend-go/internal/domain/project"
	"github.com/constructor-app/constructor-backend-go/internal/domain/report"
	"github.com/constructor-app/constructor-backend-go/internal/domain/schedule"
	"github.com/constructor-app/constructor-backend-go/internal/domain/task"
	"github.com/constructor-app/constructor-backend-go/internal/domain/transaction"
	"github.com/constructor-app/constructor-backend-go/internal/domain/user"
	"github.com/constructor-app/constructor-backend-go/internal/repository/memory"
)

// ==========================================
// HELPER FUNCTIONS
// ==========================================

func date(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic("fixtures: bad date " + s)
	}
	return t
}

func datetime(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		panic("fixtures: bad datetime " + s)
	}
	return t
}

// ==========================================
// DEMO DATASET
// ==========================================

// DemoData returns the demo roster and workspace used in development mode.
// The dataset exercises every visibility rule: tagged materials, transactions
// with internal and external involved parties, a client-owned project, and
// private notes.
func DemoData() memory.SeedData {
	users := []user.User{
		{ID: "u1", Name: "Adebayo Adekunle", Email: "adebayo.adekunle@constructor.com", AvatarURL: "https://picsum.photos/id/10/50/50", Role: user.RoleProjectManager},
		{ID: "u2", Name: "Chinwe Okoro", Email: "chinwe.okoro@constructor.com", AvatarURL: "https://picsum.photos/id/11/50/50", Role: user.RoleCompanyOwner},
		{ID: "u3", Name: "Kwame Mensah", Email: "kwame.mensah@constructor.com", AvatarURL: "https://picsum.photos/id/12/50/50", Role: user.RoleClient},
		{ID: "u4", Name: "Fatima Aliyu", Email: "fatima.aliyu@constructor.com", AvatarURL: "https://picsum.photos/id/13/50/50", Role: user.RoleProjectManager},
		{ID: "u5", Name: "Jide Sowore", Email: "jide.sowore@constructor.com", AvatarURL: "https://picsum.photos/id/14/50/50", Role: user.RoleAdmin},
		{ID: "u6", Name: "Efe Abiola", Email: "efe.abiola@constructor.com", AvatarURL: "https://picsum.photos/id/15/50/50", Role: user.RoleTeamMember},
		{ID: "u7", Name: "Ngozi Eze", Email: "ngozi.eze@client.com", AvatarURL: "https://picsum.photos/id/16/50/50", Role: user.RoleClient},
	}

	byID := make(map[string]user.User, len(users))
	for _, u := range users {
		byID[u.ID] = u
	}
	members := func(ids ...string) []user.User {
		out := make([]user.User, 0, len(ids))
		for _, id := range ids {
			out = append(out, byID[id])
		}
		return out
	}
	assignee := func(id string) *user.User {
		u := byID[id]
		return &u
	}

	projects := []project.Project{
		{
			ID: "p1", Name: "Lekki Luxury Apartments", Location: "Lagos, Nigeria",
			StartDate: date("2024-03-01"), DueDate: date("2025-06-30"),
			Budget: 50000000, ActualCost: 35000000, Status: project.StatusOnTrack, Progress: 65,
			Members: members("u1", "u2", "u3", "u4", "u5", "u6"), ClientID: "u7",
		},
		{
			ID: "p2", Name: "Accra Office Complex", Location: "Accra, Ghana",
			StartDate: date("2024-05-15"), DueDate: date("2025-02-28"),
			Budget: 35000000, ActualCost: 20000000, Status: project.StatusOnTrack, Progress: 45,
			Members: members("u2", "u4"),
		},
		{
			ID: "p3", Name: "Nairobi Tech Hub", Location: "Nairobi, Kenya",
			StartDate: date("2024-02-01"), DueDate: date("2024-12-31"),
			Budget: 20000000, ActualCost: 22500000, Status: project.StatusDelayed, Progress: 80,
			Members: members("u1", "u3", "u5", "u6"),
		},
		{
			ID: "p4", Name: "Residential Estate Phase 2", Location: "Abuja, Nigeria",
			StartDate: date("2023-11-01"), DueDate: date("2024-09-30"),
			Budget: 45000000, ActualCost: 44000000, Status: project.StatusCompleted, Progress: 100,
			Members: members("u1", "u2", "u5"),
		},
		{
			ID: "p5", Name: "Cape Town Waterfront Hotel", Location: "Cape Town, SA",
			StartDate: date("2024-08-01"), DueDate: date("2026-01-31"),
			Budget: 80000000, ActualCost: 5000000, Status: project.StatusPlanning, Progress: 10,
			Members: members("u2", "u3", "u4"),
		},
		{
			ID: "p6", Name: "Ikeja Shopping Mall Extension", Location: "Lagos, Nigeria",
			StartDate: date("2024-06-01"), DueDate: date("2025-03-31"),
			Budget: 60000000, ActualCost: 15000000, Status: project.StatusOnTrack, Progress: 25,
			Members: members("u1", "u3", "u4", "u5"),
		},
	}

	tasks := []task.Task{
		{ID: "t1", ProjectID: "p1", Title: "Design initial blueprints", Status: task.StatusDone, Assignee: assignee("u1"), DueDate: date("2024-07-20"), Priority: task.PriorityHigh},
		{ID: "t2", ProjectID: "p1", Title: "Secure construction permits", Status: task.StatusInProgress, Assignee: assignee("u2"), DueDate: date("2024-08-05"), Priority: task.PriorityHigh},
		{ID: "t3", ProjectID: "p1", Title: "Hire plumbing subcontractor", Status: task.StatusToDo, DueDate: date("2024-08-15"), Priority: task.PriorityMedium},
		{ID: "t8", ProjectID: "p1", Title: "Conduct site safety audit", Status: task.StatusToDo, Assignee: assignee("u6"), DueDate: date("2024-08-25"), Priority: task.PriorityMedium},
		{ID: "t4", ProjectID: "p2", Title: "Order foundation materials", Status: task.StatusInProgress, Assignee: assignee("u5"), DueDate: date("2024-08-10"), Priority: task.PriorityMedium},
		{ID: "t5", ProjectID: "p2", Title: "Prepare site for excavation", Status: task.StatusToDo, DueDate: date("2024-08-12"), Priority: task.PriorityHigh},
		{ID: "t6", ProjectID: "p3", Title: "Finalize electrical plan", Status: task.StatusToDo, Assignee: assignee("u1"), DueDate: date("2024-08-20"), Priority: task.PriorityLow},
		{ID: "t9", ProjectID: "p3", Title: "Install HVAC ducting", Status: task.StatusInProgress, Assignee: assignee("u6"), DueDate: date("2024-08-30"), Priority: task.PriorityHigh},
		{ID: "t7", ProjectID: "p4", Title: "Complete client brief", Status: task.StatusDone, DueDate: date("2024-07-15"), Priority: task.PriorityMedium},
	}

	materials := []material.Material{
		{
			ID: "m1", ProjectID: "p1", Name: "Cement (Dangote)", Quantity: 180, Unit: "bags",
			Supplier: "Dangote Cement Plc", Status: material.StatusInStock,
			SupplyDate: date("2024-08-01"), InvoiceNumber: "INV-CM-08-001",
			UsageHistory: []material.UsageEntry{
				{Date: date("2024-08-03"), QuantityUsed: 10, Notes: "Foundation pouring"},
				{Date: date("2024-08-04"), QuantityUsed: 10, Notes: "Foundation pouring"},
			},
			VisibleTo: []string{"u1", "u6"},
		},
		{
			ID: "m2", ProjectID: "p1", Name: "Sand", Quantity: 15, Unit: "tons",
			Supplier: "Local Suppliers Inc.", Status: material.StatusLowStock,
			SupplyDate: date("2024-08-02"), InvoiceNumber: "INV-SD-08-005",
		},
		{
			ID: "m3", ProjectID: "p1", Name: "12mm Rebar", Quantity: 500, Unit: "lengths",
			Supplier: "Iron & Steel Co.", Status: material.StatusInStock,
			SupplyDate: date("2024-07-28"), InvoiceNumber: "INV-RB-07-113",
			VisibleTo: []string{"u6"},
		},
		{
			ID: "m4", ProjectID: "p2", Name: "Glass Panels", Quantity: 0, Unit: "units",
			Supplier: "GlassWorld", Status: material.StatusOutOfStock,
			SupplyDate: date("2024-07-20"), InvoiceNumber: "INV-GL-07-041",
		},
		{
			ID: "m5", ProjectID: "p2", Name: "Aluminum Framing", Quantity: 250, Unit: "meters",
			Supplier: "AluMetals Ltd.", Status: material.StatusInStock,
			SupplyDate: date("2024-08-01"), InvoiceNumber: "INV-AL-08-002",
		},
		{
			ID: "m6", ProjectID: "p3", Name: "CAT-6 Ethernet Cable", Quantity: 420, Unit: "meters",
			Supplier: "TechCabling Solutions", Status: material.StatusInStock,
			SupplyDate: date("2024-07-15"), InvoiceNumber: "INV-ET-07-098",
			UsageHistory: []material.UsageEntry{
				{Date: date("2024-08-01"), QuantityUsed: 80, Notes: "Wiring for 1st floor"},
			},
			VisibleTo: []string{"u6"},
		},
	}

	transactions := []transaction.Transaction{
		{ID: "tr1", ProjectID: "p1", Date: date("2024-07-15"), Description: "Initial client payment", Type: transaction.TypeIncoming, Category: transaction.CategoryClientPayment, Amount: 12500000, RecordedByID: "u1"},
		{ID: "tr2", ProjectID: "p1", Date: date("2024-08-01"), Description: "Cement Bags (500)", Type: transaction.TypeExpense, Category: transaction.CategoryMaterials, Amount: 250000, ReceiptURL: "#", RecordedByID: "u6"},
		{ID: "tr3", ProjectID: "p1", Date: date("2024-08-02"), Description: "Foundation Labor Payment", Type: transaction.TypeExpense, Category: transaction.CategoryLabor, Amount: 150000, RecordedByID: "u1", InvolvedUserIDs: []string{"u6"}},
		{ID: "tr4", ProjectID: "p1", Date: date("2024-08-05"), Description: "Payment to Plumbing Subcontractor", Type: transaction.TypeExpense, Category: transaction.CategorySubcontractor, Amount: 750000, RecordedByID: "u1", ExternalInvolved: []string{"Tunde's Plumbing Co."}},
		{ID: "tr5", ProjectID: "p2", Date: date("2024-08-01"), Description: "Milestone 1 Payment", Type: transaction.TypeIncoming, Category: transaction.CategoryClientPayment, Amount: 3500000, RecordedByID: "u4"},
		{ID: "tr6", ProjectID: "p2", Date: date("2024-08-02"), Description: "Excavator Rental", Type: transaction.TypeExpense, Category: transaction.CategoryLogistics, Amount: 80000, ReceiptURL: "#", RecordedByID: "u4"},
		{ID: "tr7", ProjectID: "p3", Date: date("2024-08-03"), Description: "Steel Rebar (2 tons)", Type: transaction.TypeExpense, Category: transaction.CategoryMaterials, Amount: 450000, RecordedByID: "u6"},
		{ID: "tr8", ProjectID: "p3", Date: date("2024-08-04"), Description: "City Building Permit", Type: transaction.TypeExpense, Category: transaction.CategoryPermits, Amount: 50000, ReceiptURL: "#", RecordedByID: "u1", InvolvedUserIDs: []string{"u6"}},
		{ID: "tr9", ProjectID: "p3", Date: date("2024-08-06"), Description: "Milestone 3 Payment", Type: transaction.TypeIncoming, Category: transaction.CategoryClientPayment, Amount: 2000000, RecordedByID: "u1"},
	}

	notes := []note.Note{
		{ID: "n1p1", ProjectID: "p1", Title: "Supplier Follow-up", Content: "Need to confirm the new supplier for the glass panels. The previous quote from GlassWorld was too high. Get two alternative quotes by EOW.", LastUpdated: datetime("2024-08-05T10:00:00Z"), CreatorID: "u1"},
		{ID: "n2p1", ProjectID: "p1", Title: "Structural Engineer Notes", Content: "Follow up with the structural engineer about the revised drawings for the rooftop terrace. Client wants to see them before the meeting on the 15th.", LastUpdated: datetime("2024-08-04T11:25:00Z"), CreatorID: "u4"},
		{ID: "n3p1", ProjectID: "p1", Title: "My Private Note", Content: "This note is only for me, Efe Abiola.", LastUpdated: datetime("2024-08-06T09:00:00Z"), CreatorID: "u6"},
		{ID: "n1p2", ProjectID: "p2", Title: "Client Meeting Prep", Content: "Client meeting scheduled for next week to discuss phase 2.\n\n- Prepare presentation slides on progress.\n- Finalize budget variance report.\n- Get updated timeline from the site supervisor.", LastUpdated: datetime("2024-08-04T14:30:00Z"), CreatorID: "u1"},
	}

	phases := []schedule.Phase{
		{ID: "s1", ProjectID: "p1", Name: "Site Clearing & Preparation", StartDate: date("2024-03-01"), EndDate: date("2024-03-15"), Status: schedule.PhaseCompleted, Progress: 100},
		{ID: "s2", ProjectID: "p1", Name: "Foundation Work", StartDate: date("2024-03-16"), EndDate: date("2024-04-30"), Status: schedule.PhaseCompleted, Progress: 100},
		{ID: "s3", ProjectID: "p1", Name: "Structural Framework - Ground Floor", StartDate: date("2024-05-01"), EndDate: date("2024-06-15"), Status: schedule.PhaseCompleted, Progress: 100},
		{ID: "s4", ProjectID: "p1", Name: "Structural Framework - 1st Floor", StartDate: date("2024-06-16"), EndDate: date("2024-08-15"), Status: schedule.PhaseInProgress, Progress: 60},
		{ID: "s5", ProjectID: "p1", Name: "Roofing & Exterior", StartDate: date("2024-08-16"), EndDate: date("2024-10-30"), Status: schedule.PhaseNotStarted, Progress: 0},
		{ID: "s6", ProjectID: "p1", Name: "Internal Finishing", StartDate: date("2024-11-01"), EndDate: date("2025-04-30"), Status: schedule.PhaseNotStarted, Progress: 0},
		{ID: "s7", ProjectID: "p1", Name: "Final Inspection & Handover", StartDate: date("2025-05-01"), EndDate: date("2025-06-30"), Status: schedule.PhaseNotStarted, Progress: 0},
		{ID: "s8", ProjectID: "p3", Name: "Site Survey & Planning", StartDate: date("2024-02-01"), EndDate: date("2024-02-28"), Status: schedule.PhaseCompleted, Progress: 100},
		{ID: "s9", ProjectID: "p3", Name: "Foundation & Basement", StartDate: date("2024-03-01"), EndDate: date("2024-05-15"), Status: schedule.PhaseCompleted, Progress: 100},
		{ID: "s10", ProjectID: "p3", Name: "Steel Structure Erection", StartDate: date("2024-05-16"), EndDate: date("2024-07-31"), Status: schedule.PhaseDelayed, Progress: 70},
		{ID: "s11", ProjectID: "p3", Name: "HVAC & Electrical Installation", StartDate: date("2024-08-01"), EndDate: date("2024-10-31"), Status: schedule.PhaseInProgress, Progress: 10},
	}

	reports := []report.ProgressReport{
		{
			ID: "pr1", ProjectID: "p1", Title: "Weekly Site Update - Foundation Phase", Date: date("2024-04-10"), AuthorID: "u1",
			Content:            "Foundation pouring is 80% complete. Weather has been favorable. Material delivery for next week confirmed.",
			PercentageComplete: 65,
			Photos:             []string{"https://picsum.photos/id/1/200/150", "https://picsum.photos/id/2/200/150"},
		},
		{
			ID: "pr2", ProjectID: "p1", Title: "Monthly Progress Meeting Summary", Date: date("2024-05-01"), AuthorID: "u4",
			Content:            "Meeting with the client went well. Approved the new structural changes for the ground floor. Delays in steel delivery might impact the timeline by 2 days.",
			PercentageComplete: 70,
		},
	}

	invoices := []invoice.Invoice{
		{ID: "inv1", ProjectID: "p1", InvoiceNumber: "INV-001", ClientName: "Urban Developers Ltd.", Amount: 1250000, Status: invoice.StatusPaid, IssueDate: date("2024-07-15"), DueDate: date("2024-07-30")},
		{ID: "inv2", ProjectID: "p2", InvoiceNumber: "INV-002", ClientName: "Coastal Properties", Amount: 3500000, Status: invoice.StatusPending, IssueDate: date("2024-08-01"), DueDate: date("2024-08-15")},
		{ID: "inv3", ProjectID: "p3", InvoiceNumber: "INV-003", ClientName: "GreenScape Homes", Amount: 850000, Status: invoice.StatusPaid, IssueDate: date("2024-07-20"), DueDate: date("2024-08-05")},
		{ID: "inv4", ProjectID: "p1", InvoiceNumber: "INV-004", ClientName: "Urban Developers Ltd.", Amount: 2100000, Status: invoice.StatusOverdue, IssueDate: date("2024-07-10"), DueDate: date("2024-07-25"), RecipientID: "u7"},
	}

	documents := []document.Document{
		{ID: "d1", ProjectID: "p1", Name: "Main_Building_Blueprint.pdf", Type: document.TypeBlueprint, Version: "v2.1", UploadDate: date("2024-07-28"), URL: "#"},
		{ID: "d2", ProjectID: "p1", Name: "Client_Contract_Signed.pdf", Type: document.TypeContract, Version: "v1.0", UploadDate: date("2024-07-15"), URL: "#"},
		{ID: "d3", ProjectID: "p2", Name: "Electrical_Wiring_Plan.dwg", Type: document.TypeBlueprint, Version: "v1.3", UploadDate: date("2024-07-29"), URL: "#"},
		{ID: "d4", ProjectID: "p2", Name: "July_Progress_Report.docx", Type: document.TypeReport, Version: "v1.0", UploadDate: date("2024-08-01"), URL: "#"},
		{ID: "d5", ProjectID: "p4", Name: "Final_Invoice_INV-001.pdf", Type: document.TypeInvoice, Version: "v1.0", UploadDate: date("2024-07-20"), URL: "#"},
	}

	return memory.SeedData{
		Users:        users,
		Projects:     projects,
		Materials:    materials,
		Transactions: transactions,
		Tasks:        tasks,
		Notes:        notes,
		Phases:       phases,
		Reports:      reports,
		Invoices:     invoices,
		Documents:    documents,
	}
}
