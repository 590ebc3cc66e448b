// AngelaMos | 2026
// seed.go

package seed

import (
	"context"
	"fmt"
	"time"

	"github.com/carterperez-dev/templates/loyalty/internal/achievement"
	"github.com/carterperez-dev/templates/loyalty/internal/ledger"
	"github.com/carterperez-dev/templates/loyalty/internal/loyalty"
	"github.com/carterperez-dev/templates/loyalty/internal/notification"
	"github.com/carterperez-dev/templates/loyalty/internal/reward"
	"github.com/carterperez-dev/templates/loyalty/internal/store"
	"github.com/carterperez-dev/templates/loyalty/internal/submission"
	"github.com/carterperez-dev/templates/loyalty/internal/task"
	"github.com/carterperez-dev/templates/loyalty/internal/user"
)

// Load fills an empty store with the fixture catalog. Records keep their
// fixture order and short ids. Nothing is written if any record fails.
func Load(ctx context.Context, db *store.DB, repos loyalty.Repositories) error {
	return db.InTx(ctx, func(ctx context.Context) error {
		for _, u := range Users() {
			if err := repos.Users.Seed(ctx, &u); err != nil {
				return fmt.Errorf("seed users: %w", err)
			}
		}
		for _, t := range Tasks() {
			if err := repos.Tasks.Seed(ctx, &t); err != nil {
				return fmt.Errorf("seed tasks: %w", err)
			}
		}
		for _, s := range Submissions() {
			if err := repos.Submissions.Seed(ctx, &s); err != nil {
				return fmt.Errorf("seed submissions: %w", err)
			}
		}
		for _, n := range Notifications() {
			if err := repos.Notifications.Seed(ctx, &n); err != nil {
				return fmt.Errorf("seed notifications: %w", err)
			}
		}
		for _, t := range Transactions() {
			if err := repos.Ledger.Seed(ctx, &t); err != nil {
				return fmt.Errorf("seed transactions: %w", err)
			}
		}
		for _, a := range Achievements() {
			if err := repos.Achievements.Seed(ctx, &a); err != nil {
				return fmt.Errorf("seed achievements: %w", err)
			}
		}
		for _, r := range Rewards() {
			if err := repos.Rewards.Seed(ctx, &r); err != nil {
				return fmt.Errorf("seed rewards: %w", err)
			}
		}
		return nil
	})
}

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}

func ptr[T any](v T) *T {
	return &v
}

func Users() []user.User {
	return []user.User{
		{
			ID:        "1",
			Email:     "admin@yamaha.co.id",
			Name:      "Admin Yamaha",
			Phone:     "+62812-3456-7890",
			Avatar:    "https://images.unsplash.com/photo-1472099645785-5658abf4ff4e?w=150&h=150&fit=crop&crop=face",
			Balance:   0,
			Role:      user.RoleAdmin,
			CreatedAt: day(2024, time.January, 15),
		},
		{
			ID:        "2",
			Email:     "budi.santoso@gmail.com",
			Name:      "Budi Santoso",
			Phone:     "+62813-4567-8901",
			Avatar:    "https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?w=150&h=150&fit=crop&crop=face",
			Balance:   275000,
			Role:      user.RoleCustomer,
			CreatedAt: day(2024, time.February, 10),
		},
		{
			ID:        "3",
			Email:     "sari.dewi@yahoo.com",
			Name:      "Sari Dewi",
			Phone:     "+62814-5678-9012",
			Avatar:    "https://images.unsplash.com/photo-1494790108755-2616b612b786?w=150&h=150&fit=crop&crop=face",
			Balance:   450000,
			Role:      user.RoleCustomer,
			CreatedAt: day(2024, time.January, 20),
		},
		{
			ID:        "4",
			Email:     "ahmad.rizki@gmail.com",
			Name:      "Ahmad Rizki",
			Phone:     "+62815-6789-0123",
			Avatar:    "https://images.unsplash.com/photo-1500648767791-00dcc994a43e?w=150&h=150&fit=crop&crop=face",
			Balance:   180000,
			Role:      user.RoleCustomer,
			CreatedAt: day(2024, time.March, 5),
		},
		{
			ID:        "5",
			Email:     "maya.putri@gmail.com",
			Name:      "Maya Putri",
			Phone:     "+62816-7890-1234",
			Avatar:    "https://images.unsplash.com/photo-1438761681033-6461ffad8d80?w=150&h=150&fit=crop&crop=face",
			Balance:   320000,
			Role:      user.RoleCustomer,
			CreatedAt: day(2024, time.February, 28),
		},
		{
			ID:        "6",
			Email:     "doni.pratama@gmail.com",
			Name:      "Doni Pratama",
			Phone:     "+62817-8901-2345",
			Avatar:    "https://images.unsplash.com/photo-1472099645785-5658abf4ff4e?w=150&h=150&fit=crop&crop=face",
			Balance:   95000,
			Role:      user.RoleCustomer,
			CreatedAt: day(2024, time.March, 12),
		},
	}
}

func Tasks() []task.Task {
	return []task.Task{
		{
			ID:          "1",
			Title:       "Review Service Yamaha NMAX",
			Description: "Berikan review pengalaman service motor Yamaha NMAX Anda dan upload foto struk service. Review harus mencakup kualitas pelayanan, kecepatan service, dan kepuasan keseluruhan.",
			Reward:      75000,
			Deadline:    day(2025, time.January, 25),
			Category:    task.CategoryService,
			Requirements: []string{
				"Foto struk service yang jelas",
				"Review minimal 100 kata",
				"Rating 1-5 bintang untuk setiap aspek",
				"Foto kondisi motor sebelum dan sesudah service",
			},
			Status:    task.StatusActive,
			CreatedBy: "1",
			CreatedAt: day(2025, time.January, 10),
		},
		{
			ID:          "2",
			Title:       "Share Foto Motor di Instagram",
			Description: "Posting foto motor Yamaha Anda di Instagram dengan hashtag #YamahaIndonesia #YamahaCommunity. Foto harus menampilkan motor dengan latar belakang menarik.",
			Reward:      35000,
			Deadline:    day(2025, time.January, 30),
			Category:    task.CategorySocial,
			Requirements: []string{
				"Posting di Instagram dengan foto berkualitas tinggi",
				"Gunakan hashtag #YamahaIndonesia #YamahaCommunity",
				"Tag minimal 3 teman",
				"Caption minimal 50 kata tentang pengalaman berkendara",
			},
			Status:    task.StatusActive,
			CreatedBy: "1",
			CreatedAt: day(2025, time.January, 8),
		},
		{
			ID:          "3",
			Title:       "Survey Kepuasan Pelanggan Q1 2025",
			Description: "Bantu Yamaha meningkatkan layanan dengan mengisi survey kepuasan pelanggan. Survey mencakup pengalaman pembelian, service, dan kepuasan produk.",
			Reward:      50000,
			Deadline:    day(2025, time.February, 15),
			Category:    task.CategorySurvey,
			Requirements: []string{
				"Lengkapi semua 25 pertanyaan survey",
				"Berikan feedback konstruktif",
				"Submit dalam 1x kesempatan",
				"Waktu pengisian maksimal 30 menit",
			},
			Status:    task.StatusActive,
			CreatedBy: "1",
			CreatedAt: day(2025, time.January, 5),
		},
		{
			ID:          "4",
			Title:       "Test Ride Yamaha Aerox 155",
			Description: "Ikuti test ride Yamaha Aerox 155 terbaru di dealer resmi dan berikan feedback pengalaman berkendara. Dapatkan kesempatan merasakan performa terdepan.",
			Reward:      100000,
			Deadline:    day(2025, time.January, 28),
			Category:    task.CategoryTestRide,
			Requirements: []string{
				"Hadir di dealer yang ditentukan",
				"Membawa SIM C yang masih aktif",
				"Mengisi form feedback lengkap",
				"Foto dokumentasi saat test ride",
			},
			Status:    task.StatusActive,
			CreatedBy: "1",
			CreatedAt: day(2025, time.January, 12),
		},
		{
			ID:          "5",
			Title:       "Video Review Yamaha Mio M3",
			Description: "Buat video review Yamaha Mio M3 dengan durasi 3-5 menit. Bahas performa, desain, fitur, dan pengalaman berkendara sehari-hari.",
			Reward:      150000,
			Deadline:    day(2025, time.February, 10),
			Category:    task.CategoryContent,
			Requirements: []string{
				"Video durasi 3-5 menit",
				"Kualitas HD minimal 720p",
				"Bahas minimal 5 aspek motor",
				"Upload ke YouTube dan bagikan link",
			},
			Status:    task.StatusActive,
			CreatedBy: "1",
			CreatedAt: day(2025, time.January, 7),
		},
		{
			ID:          "6",
			Title:       "Kunjungi Yamaha Heritage Museum",
			Description: "Kunjungi Yamaha Heritage Museum dan bagikan pengalaman Anda. Upload foto dan ceritakan sejarah Yamaha yang paling berkesan.",
			Reward:      80000,
			Deadline:    day(2025, time.February, 20),
			Category:    task.CategoryEvent,
			Requirements: []string{
				"Foto di depan museum dengan tiket masuk",
				"Minimal 5 foto koleksi motor klasik",
				"Cerita pengalaman minimal 200 kata",
				"Share di media sosial dengan hashtag #YamahaHeritage",
			},
			Status:    task.StatusActive,
			CreatedBy: "1",
			CreatedAt: day(2025, time.January, 9),
		},
		{
			ID:          "7",
			Title:       "Referral Program - Ajak Teman Bergabung",
			Description: "Ajak teman untuk bergabung dengan komunitas Yamaha Member. Setiap teman yang berhasil mendaftar dan verifikasi akun, Anda mendapat reward.",
			Reward:      25000,
			Deadline:    day(2025, time.March, 31),
			Category:    task.CategoryReferral,
			Requirements: []string{
				"Teman mendaftar menggunakan kode referral Anda",
				"Teman melengkapi profil dan verifikasi",
				"Teman menyelesaikan minimal 1 tugas",
				"Maksimal 10 referral per bulan",
			},
			Status:    task.StatusActive,
			CreatedBy: "1",
			CreatedAt: day(2025, time.January, 1),
		},
		{
			ID:          "8",
			Title:       "Workshop Safety Riding",
			Description: "Ikuti workshop safety riding yang diselenggarakan oleh Yamaha. Pelajari teknik berkendara yang aman dan dapatkan sertifikat.",
			Reward:      120000,
			Deadline:    day(2025, time.February, 5),
			Category:    task.CategoryWorkshop,
			Requirements: []string{
				"Hadir tepat waktu di lokasi workshop",
				"Mengikuti seluruh sesi (4 jam)",
				"Lulus ujian praktik safety riding",
				"Foto sertifikat dan upload",
			},
			Status:    task.StatusActive,
			CreatedBy: "1",
			CreatedAt: day(2025, time.January, 11),
		},
	}
}

const (
	photoService = "https://images.unsplash.com/photo-1558618666-fcd25c85cd64?w=400&h=300&fit=crop"
	photoRide    = "https://images.unsplash.com/photo-1571068316344-75bc76f77890?w=400&h=300&fit=crop"
)

func Submissions() []submission.Submission {
	return []submission.Submission{
		{
			ID:     "1",
			TaskID: "1",
			UserID: "2",
			Content: submission.Content{
				Text:   "Service NMAX saya di dealer Yamaha Kelapa Gading sangat memuaskan. Teknisi sangat profesional dan menjelaskan setiap detail perbaikan. Waktu tunggu hanya 2 jam untuk service berkala. Motor terasa lebih halus setelah service dan suara mesin lebih senyap. Pelayanan customer service juga ramah dan informatif. Harga service sesuai dengan kualitas yang diberikan. Sangat puas dengan pengalaman service kali ini.",
				Images: []string{photoService, photoRide},
			},
			Status:      submission.StatusApproved,
			SubmittedAt: day(2025, time.January, 15),
			ReviewedAt:  ptr(day(2025, time.January, 16)),
			ReviewedBy:  "1",
			Feedback:    "Review sangat detail dan informatif. Foto struk service jelas. Terima kasih atas partisipasinya!",
		},
		{
			ID:     "2",
			TaskID: "2",
			UserID: "3",
			Content: submission.Content{
				Text:   "Yamaha Aerox kesayangan di pantai Ancol! Motor yang sempurna untuk touring dan daily riding. Performa mesin responsif dan desain yang sporty bikin percaya diri di jalan. #YamahaIndonesia #YamahaCommunity",
				Images: []string{photoService},
			},
			Status:      submission.StatusPending,
			SubmittedAt: day(2025, time.January, 18),
		},
		{
			ID:     "3",
			TaskID: "3",
			UserID: "4",
			Content: submission.Content{
				Text: "Survey telah diisi lengkap. Secara keseluruhan sangat puas dengan produk dan layanan Yamaha. Beberapa saran untuk peningkatan layanan after sales dan ketersediaan spare part di daerah.",
			},
			Status:      submission.StatusApproved,
			SubmittedAt: day(2025, time.January, 14),
			ReviewedAt:  ptr(day(2025, time.January, 15)),
			ReviewedBy:  "1",
			Feedback:    "Terima kasih atas feedback yang konstruktif. Masukan Anda sangat berharga untuk perbaikan layanan kami.",
		},
		{
			ID:     "4",
			TaskID: "4",
			UserID: "5",
			Content: submission.Content{
				Text:   "Test ride Aerox 155 di dealer Yamaha Sunter. Akselerasi sangat responsif, handling stabil di tikungan, dan fitur smart key sangat praktis. Suspensi nyaman untuk berkendara jarak jauh. Sangat terkesan dengan performa mesin 155cc VVA.",
				Images: []string{photoService, photoRide},
			},
			Status:      submission.StatusPending,
			SubmittedAt: day(2025, time.January, 19),
		},
	}
}

func Notifications() []notification.Notification {
	return []notification.Notification{
		{
			ID:        "1",
			UserID:    "2",
			Title:     "Tugas Baru Tersedia!",
			Message:   `Ada tugas baru "Video Review Yamaha Mio M3" dengan reward Rp 150.000. Jangan sampai terlewat!`,
			Type:      notification.TypeTask,
			CreatedAt: day(2025, time.January, 19),
		},
		{
			ID:        "2",
			UserID:    "2",
			Title:     "Submission Disetujui",
			Message:   `Submission Anda untuk tugas "Review Service Yamaha NMAX" telah disetujui. Reward Rp 75.000 telah ditambahkan ke saldo.`,
			Type:      notification.TypeSubmission,
			Read:      true,
			CreatedAt: day(2025, time.January, 16),
		},
		{
			ID:        "3",
			UserID:    "3",
			Title:     "Deadline Mendekat",
			Message:   `Tugas "Share Foto Motor di Instagram" akan berakhir dalam 3 hari. Segera selesaikan untuk mendapatkan reward!`,
			Type:      notification.TypeTask,
			CreatedAt: day(2025, time.January, 18),
		},
		{
			ID:        "4",
			UserID:    "4",
			Title:     "Selamat! Level Naik",
			Message:   "Selamat! Anda telah naik ke Level 5. Dapatkan akses ke tugas eksklusif dengan reward lebih besar.",
			Type:      notification.TypeSystem,
			CreatedAt: day(2025, time.January, 17),
		},
		{
			ID:        "5",
			UserID:    "5",
			Title:     "Workshop Safety Riding",
			Message:   "Pendaftaran workshop safety riding telah dibuka. Daftar sekarang dan dapatkan sertifikat resmi!",
			Type:      notification.TypeSystem,
			Read:      true,
			CreatedAt: day(2025, time.January, 15),
		},
	}
}

func Transactions() []ledger.Transaction {
	return []ledger.Transaction{
		{
			ID:          "1",
			UserID:      "2",
			Type:        ledger.TypeReward,
			Amount:      75000,
			Status:      ledger.StatusCompleted,
			Description: "Reward dari tugas: Review Service Yamaha NMAX",
			CreatedAt:   day(2025, time.January, 16),
		},
		{
			ID:          "2",
			UserID:      "2",
			Type:        ledger.TypeWithdrawal,
			Amount:      -50000,
			Status:      ledger.StatusCompleted,
			Description: "Penarikan saldo ke rekening BCA ****1234",
			CreatedAt:   day(2025, time.January, 14),
		},
		{
			ID:          "3",
			UserID:      "3",
			Type:        ledger.TypeReward,
			Amount:      50000,
			Status:      ledger.StatusCompleted,
			Description: "Reward dari tugas: Survey Kepuasan Pelanggan Q4 2024",
			CreatedAt:   day(2025, time.January, 12),
		},
		{
			ID:          "4",
			UserID:      "3",
			Type:        ledger.TypeReward,
			Amount:      35000,
			Status:      ledger.StatusPending,
			Description: "Reward dari tugas: Share Foto Motor di Instagram",
			CreatedAt:   day(2025, time.January, 18),
		},
		{
			ID:          "5",
			UserID:      "4",
			Type:        ledger.TypeReward,
			Amount:      50000,
			Status:      ledger.StatusCompleted,
			Description: "Reward dari tugas: Survey Kepuasan Pelanggan Q1 2025",
			CreatedAt:   day(2025, time.January, 15),
		},
		{
			ID:          "6",
			UserID:      "4",
			Type:        ledger.TypeWithdrawal,
			Amount:      -100000,
			Status:      ledger.StatusPending,
			Description: "Penarikan saldo ke rekening Mandiri ****5678",
			CreatedAt:   day(2025, time.January, 17),
		},
		{
			ID:          "7",
			UserID:      "5",
			Type:        ledger.TypeReward,
			Amount:      100000,
			Status:      ledger.StatusCompleted,
			Description: "Reward dari tugas: Test Ride Yamaha Aerox 155",
			CreatedAt:   day(2025, time.January, 13),
		},
		{
			ID:          "8",
			UserID:      "5",
			Type:        ledger.TypeReward,
			Amount:      25000,
			Status:      ledger.StatusCompleted,
			Description: "Bonus referral - Ahmad Rizki bergabung",
			CreatedAt:   day(2025, time.January, 10),
		},
	}
}

func Achievements() []achievement.Achievement {
	return []achievement.Achievement{
		{ID: "1", Title: "First Steps", Description: "Selesaikan tugas pertama Anda", Icon: "🎯", Requirement: 1, Reward: 10000, Category: "milestone"},
		{ID: "2", Title: "Social Butterfly", Description: "Selesaikan 5 tugas social media", Icon: "📱", Requirement: 5, Reward: 25000, Category: "social"},
		{ID: "3", Title: "Service Expert", Description: "Berikan 10 review service", Icon: "🔧", Requirement: 10, Reward: 50000, Category: "service"},
		{ID: "4", Title: "Content Creator", Description: "Buat 3 video review", Icon: "🎥", Requirement: 3, Reward: 75000, Category: "content"},
		{ID: "5", Title: "Community Leader", Description: "Referral 20 member baru", Icon: "👥", Requirement: 20, Reward: 100000, Category: "referral"},
	}
}

func Rewards() []reward.Reward {
	endOfYear := day(2025, time.December, 31)

	return []reward.Reward{
		{
			ID:          "1",
			Title:       "Voucher Service Gratis",
			Description: "Voucher service berkala gratis untuk semua tipe Yamaha",
			Points:      500,
			Category:    "service",
			Image:       "https://images.unsplash.com/photo-1558618666-fcd25c85cd64?w=300&h=200&fit=crop",
			Stock:       50,
			ValidUntil:  endOfYear,
		},
		{
			ID:          "2",
			Title:       "Helm Yamaha Original",
			Description: "Helm half face Yamaha dengan desain eksklusif",
			Points:      1000,
			Category:    "merchandise",
			Image:       "https://images.unsplash.com/photo-1544966503-7cc5ac882d5f?w=300&h=200&fit=crop",
			Stock:       25,
			ValidUntil:  endOfYear,
		},
		{
			ID:          "3",
			Title:       "Jaket Yamaha Racing",
			Description: "Jaket touring Yamaha dengan material berkualitas tinggi",
			Points:      1500,
			Category:    "merchandise",
			Image:       "https://images.unsplash.com/photo-1551698618-1dfe5d97d256?w=300&h=200&fit=crop",
			Stock:       15,
			ValidUntil:  endOfYear,
		},
		{
			ID:          "4",
			Title:       "Aksesoris Motor Package",
			Description: "Paket aksesoris lengkap: spion, lampu LED, dan cover motor",
			Points:      2000,
			Category:    "accessories",
			Image:       "https://images.unsplash.com/photo-1558618666-fcd25c85cd64?w=300&h=200&fit=crop",
			Stock:       10,
			ValidUntil:  endOfYear,
		},
		{
			ID:          "5",
			Title:       "Test Ride Eksklusif",
			Description: "Kesempatan test ride motor Yamaha terbaru sebelum launching",
			Points:      800,
			Category:    "experience",
			Image:       "https://images.unsplash.com/photo-1571068316344-75bc76f77890?w=300&h=200&fit=crop",
			Stock:       30,
			ValidUntil:  day(2025, time.June, 30),
		},
	}
}
