package repository

import "time"

// Seed content and the static section/topic taxonomy. Sections and topics
// are read-only navigation data; only users, threads and comments are
// persisted.

func seedUsers() []User {
	return []User{
		{
			ID:         "1",
			Username:   "SarahM",
			Avatar:     "https://images.pexels.com/photos/774909/pexels-photo-774909.jpeg?auto=compress&cs=tinysrgb&w=150&h=150&fit=crop",
			Bio:        "Parent of two amazing ADHD kids. Learning every day!",
			ADHDType:   "Combined Type",
			JoinedAt:   time.Date(2023, 6, 15, 0, 0, 0, 0, time.UTC),
			IsOnline:   true,
			Role:       RoleMember,
			IsVerified: true,
		},
		{
			ID:         "2",
			Username:   "FocusedMike",
			Avatar:     "https://images.pexels.com/photos/220453/pexels-photo-220453.jpeg?auto=compress&cs=tinysrgb&w=150&h=150&fit=crop",
			Bio:        "Software developer with ADHD. Sharing productivity tips!",
			ADHDType:   "Inattentive",
			JoinedAt:   time.Date(2023, 5, 20, 0, 0, 0, 0, time.UTC),
			IsOnline:   false,
			Role:       RoleModerator,
			IsVerified: true,
		},
		{
			ID:         "3",
			Username:   "ZenLily",
			Avatar:     "https://images.pexels.com/photos/415829/pexels-photo-415829.jpeg?auto=compress&cs=tinysrgb&w=150&h=150&fit=crop",
			Bio:        "ADHD coach helping others find their rhythm ✨",
			ADHDType:   "Hyperactive-Impulsive",
			JoinedAt:   time.Date(2023, 7, 10, 0, 0, 0, 0, time.UTC),
			IsOnline:   true,
			Role:       RoleMember,
			IsVerified: true,
		},
	}
}

// SeedThreads is the fixed thread set Initialize writes into an empty
// store. Counters here are display seed data, not derived values.
func SeedThreads() []Thread {
	users := seedUsers()
	return []Thread{
		{
			ID:    "1",
			Title: "How do you handle overwhelming to-do lists?",
			Content: `I always start my day with the best intentions, making detailed to-do lists. But by noon, I'm completely overwhelmed and end up doing nothing productive.

Does anyone have strategies that actually work? I've tried apps, paper planners, sticky notes... but nothing seems to stick.

Would love to hear what's worked for others! 💙`,
			Author:       users[0],
			CreatedAt:    time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC),
			UpdatedAt:    time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC),
			Tags:         []string{"Focus", "Productivity", "Time Management"},
			Likes:        23,
			CommentCount: 8,
			IsLiked:      false,
			IsPinned:     false,
			IsPublic:     true,
			Category:     CategoryPublic,
		},
		{
			ID:    "2",
			Title: "Celebrating small wins: Finished a project today! 🎉",
			Content: `After weeks of procrastination, I finally completed that work project that's been hanging over me.

For anyone struggling: I broke it into tiny 15-minute chunks and used the Pomodoro Technique. Also, I told my partner about my deadline so I had some accountability.

Sometimes we need to celebrate the "normal" things that feel huge to us. What small wins are you celebrating today?`,
			Author:       users[1],
			CreatedAt:    time.Date(2024, 1, 14, 16, 45, 0, 0, time.UTC),
			UpdatedAt:    time.Date(2024, 1, 14, 16, 45, 0, 0, time.UTC),
			Tags:         []string{"Success", "Motivation", "Productivity"},
			Likes:        47,
			CommentCount: 12,
			IsLiked:      true,
			IsPinned:     true,
			IsPublic:     true,
			Category:     CategoryPublic,
		},
		{
			ID:    "3",
			Title: "ADHD-friendly meal prep ideas?",
			Content: `I know meal prep is supposed to help, but I get overwhelmed by all the planning and prep work. By Wednesday, I'm back to ordering takeout.

Looking for super simple meal prep ideas that don't require lots of ingredients or complicated steps. Bonus points if they're freezer-friendly!

What are your go-to easy meals?`,
			Author:       users[2],
			CreatedAt:    time.Date(2024, 1, 13, 12, 20, 0, 0, time.UTC),
			UpdatedAt:    time.Date(2024, 1, 13, 12, 20, 0, 0, time.UTC),
			Tags:         []string{"Self-Care", "Daily Life", "Executive Function"},
			Likes:        19,
			CommentCount: 15,
			IsLiked:      false,
			IsPinned:     false,
			IsPublic:     true,
			Category:     CategoryPublic,
		},
		{
			ID:    "4",
			Title: "Struggling with rejection sensitivity today",
			Content: `Had a tough interaction with my boss today and I can't stop replaying it. The rejection sensitive dysphoria is hitting hard and I feel like I'm spiraling.

Anyone else deal with this? How do you cope when the RSD kicks in? I know logically it's not as bad as my brain is making it, but the feelings are so intense.

Could really use some support right now. 💜`,
			Author:       users[0],
			CreatedAt:    time.Date(2024, 1, 12, 14, 30, 0, 0, time.UTC),
			UpdatedAt:    time.Date(2024, 1, 12, 14, 30, 0, 0, time.UTC),
			Tags:         []string{"RSD", "Emotional Regulation", "Support"},
			Likes:        31,
			CommentCount: 18,
			IsLiked:      false,
			IsPinned:     false,
			IsPublic:     false,
			Category:     CategoryMembersOnly,
		},
		{
			ID:    "5",
			Title: "Medication adjustment anxiety",
			Content: `My psychiatrist wants to adjust my medication dosage and I'm feeling really anxious about it. The current dose isn't perfect but I'm scared of side effects or it not working at all.

Has anyone been through medication changes? How did you handle the anxiety around it? Any tips for tracking symptoms during the transition?

This feels like such a vulnerable topic but I know this community gets it.`,
			Author:       users[2],
			CreatedAt:    time.Date(2024, 1, 11, 9, 15, 0, 0, time.UTC),
			UpdatedAt:    time.Date(2024, 1, 11, 9, 15, 0, 0, time.UTC),
			Tags:         []string{"Medication", "Anxiety", "Treatment"},
			Likes:        24,
			CommentCount: 22,
			IsLiked:      false,
			IsPinned:     false,
			IsPublic:     false,
			Category:     CategorySupportGroups,
		},
	}
}

func SeedComments() []Comment {
	users := seedUsers()
	return []Comment{
		{
			ID:        "1",
			Content:   `I use the "Rule of 3" - I only put 3 things on my daily list. Game changer!`,
			Author:    users[1],
			CreatedAt: time.Date(2024, 1, 15, 11, 15, 0, 0, time.UTC),
			Likes:     5,
			IsLiked:   true,
			ThreadID:  "1",
		},
		{
			ID:        "2",
			Content:   `Have you tried breaking tasks into smaller steps? Sometimes my "clean kitchen" becomes "put dishes in dishwasher" and that feels more manageable.`,
			Author:    users[2],
			CreatedAt: time.Date(2024, 1, 15, 12, 30, 0, 0, time.UTC),
			Likes:     8,
			IsLiked:   false,
			ThreadID:  "1",
		},
	}
}

func Sections() []ForumSection {
	return []ForumSection{
		{
			ID:          "public-discussions",
			Name:        "Public Discussions",
			Description: "Open conversations about ADHD awareness, tips, and general support",
			Icon:        "Globe",
			IsPublic:    true,
			ThreadCount: 156,
			Color:       "bg-primary-100 text-primary-700",
		},
		{
			ID:          "getting-started",
			Name:        "Getting Started",
			Description: "New to ADHD? Start here for basics and community guidelines",
			Icon:        "BookOpen",
			IsPublic:    true,
			ThreadCount: 89,
			Color:       "bg-accent-100 text-accent-700",
		},
		{
			ID:          "members-lounge",
			Name:        "Members Lounge",
			Description: "Private space for deeper discussions and personal sharing",
			Icon:        "Users",
			IsPublic:    false,
			ThreadCount: 234,
			Color:       "bg-secondary-100 text-secondary-700",
		},
		{
			ID:          "support-groups",
			Name:        "Support Groups",
			Description: "Intimate groups for specific challenges and peer support",
			Icon:        "Heart",
			IsPublic:    false,
			ThreadCount: 67,
			Color:       "bg-coral/20 text-red-700",
		},
		{
			ID:          "resources",
			Name:        "Resources & Tools",
			Description: "Helpful resources, apps, and tools for managing ADHD",
			Icon:        "Bookmark",
			IsPublic:    true,
			ThreadCount: 123,
			Color:       "bg-warm/30 text-yellow-700",
		},
	}
}

func Topics() []Topic {
	return []Topic{
		{
			ID:          "1",
			Name:        "Focus & Productivity",
			Description: "Tips and strategies for staying focused",
			Color:       "bg-primary-100 text-primary-700",
			ThreadCount: 245,
			IsPublic:    true,
		},
		{
			ID:          "2",
			Name:        "Time Management",
			Description: "Overcoming time blindness and scheduling",
			Color:       "bg-secondary-100 text-secondary-700",
			ThreadCount: 189,
			IsPublic:    true,
		},
		{
			ID:           "3",
			Name:         "Parenting",
			Description:  "Supporting ADHD children and families",
			Color:        "bg-accent-100 text-accent-700",
			ThreadCount:  156,
			IsPublic:     false,
			RequiresAuth: true,
		},
		{
			ID:           "4",
			Name:         "Personal Struggles",
			Description:  "Safe space for sharing personal challenges",
			Color:        "bg-coral/20 text-red-700",
			ThreadCount:  134,
			IsPublic:     false,
			RequiresAuth: true,
		},
		{
			ID:           "5",
			Name:         "Medication & Treatment",
			Description:  "Discussing treatment options and experiences",
			Color:        "bg-purple-100 text-purple-700",
			ThreadCount:  98,
			IsPublic:     false,
			RequiresAuth: true,
		},
	}
}
