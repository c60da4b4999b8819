package services

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/umidaZ/bisp-reservation/models"
	"github.com/umidaZ/bisp-reservation/utils"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const (
	dateLayout = "2006-01-02"
	timeLayout = "15:04"
)

// ReservationCandidate adalah usulan reservasi yang sudah lolos parsing di
// request layer. Existence restaurant/customer dijamin oleh caller,
// kapasitas meja dibaca ulang oleh scheduler.
type ReservationCandidate struct {
	RestaurantID    uint
	CustomerID      uint
	TableID         uint
	Date            string
	StartTime       string
	EndTime         string
	NumGuests       int
	SpecialRequests *string
}

// ReservationScheduler menjaga invariant slot meja: tidak boleh ada dua
// reservasi non-rejected yang tumpang tindih pada (table, date) yang sama.
type ReservationScheduler struct {
	DB *gorm.DB

	// now bisa diganti di test untuk aturan past-date/past-time
	now func() time.Time

	mu        sync.Mutex
	slotLocks map[string]*sync.Mutex
}

func NewReservationScheduler(db *gorm.DB) *ReservationScheduler {
	return &ReservationScheduler{
		DB:        db,
		now:       time.Now,
		slotLocks: make(map[string]*sync.Mutex),
	}
}

// lockSlot mengembalikan mutex untuk satu key (table, date). Ini hanya
// mengurangi contention antar goroutine dalam satu proses; serialisasi
// lintas proses ditangani row lock di dalam transaksi ValidateAndCreate.
func (s *ReservationScheduler) lockSlot(tableID uint, date string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := fmt.Sprintf("%d|%s", tableID, date)
	if _, exists := s.slotLocks[key]; !exists {
		s.slotLocks[key] = &sync.Mutex{}
	}
	return s.slotLocks[key]
}

// overlaps -> predikat half-open interval: [s1,e1) dan [s2,e2) bentrok jika
// s1 < e2 && e1 > s2. Back-to-back (e1 == s2) bukan konflik.
// Perbandingan string HH:MM sama dengan perbandingan kronologis.
func overlaps(start1, end1, start2, end2 string) bool {
	return start1 < end2 && end1 > start2
}

// isLockContention mengenali kegagalan serialisasi dua transaksi yang berebut
// slot yang sama (deadlock MySQL, busy SQLite). Bagi caller hasilnya sama
// dengan kalah di conflict scan.
func isLockContention(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "database is locked") ||
		strings.Contains(msg, "database table is locked") ||
		strings.Contains(msg, "Deadlock found") ||
		strings.Contains(msg, "try restarting transaction")
}

// ValidateAndCreate memvalidasi usulan reservasi lalu menyimpannya dengan
// status waiting. Insert reservasi dan append ledger meja terjadi dalam satu
// transaksi: dua-duanya masuk atau dua-duanya batal.
func (s *ReservationScheduler) ValidateAndCreate(candidate ReservationCandidate) (*models.Reservation, error) {
	if _, err := time.Parse(dateLayout, candidate.Date); err != nil {
		return nil, ErrInvalidDate
	}
	if _, err := time.Parse(timeLayout, candidate.StartTime); err != nil {
		return nil, ErrInvalidTime
	}
	if _, err := time.Parse(timeLayout, candidate.EndTime); err != nil {
		return nil, ErrInvalidTime
	}

	var table models.Table
	if err := s.DB.First(&table, candidate.TableID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTableNotFound
		}
		return nil, err
	}

	if candidate.NumGuests > table.Capacity {
		return nil, ErrCapacityExceeded
	}
	if candidate.StartTime >= candidate.EndTime {
		return nil, ErrInvalidInterval
	}

	today := s.now().Format(dateLayout)
	if candidate.Date < today {
		return nil, ErrPastDate
	}
	if candidate.Date == today && candidate.StartTime < s.now().Format(timeLayout) {
		return nil, ErrPastStartTime
	}

	// Jalur cepat dalam-proses; serialisasi lintas proses ada di transaksi
	lock := s.lockSlot(candidate.TableID, candidate.Date)
	lock.Lock()
	defer lock.Unlock()

	reservation := models.Reservation{
		Code:            uuid.NewString(),
		RestaurantID:    candidate.RestaurantID,
		CustomerID:      candidate.CustomerID,
		TableID:         candidate.TableID,
		Date:            candidate.Date,
		StartTime:       candidate.StartTime,
		EndTime:         candidate.EndTime,
		NumGuests:       candidate.NumGuests,
		SpecialRequests: candidate.SpecialRequests,
		Status:          models.ReservationWaiting,
	}

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		// Row lock pada baris meja: dua proses yang berebut slot yang sama
		// terserialisasi di database, yang kalah menunggu lalu melihat baris
		// pemenang di conflict scan. SQLite tidak punya FOR UPDATE;
		// single-writer lock-nya menutup kasus yang sama.
		lockTx := tx
		if tx.Dialector.Name() != "sqlite" {
			lockTx = tx.Clauses(clause.Locking{Strength: "UPDATE"})
		}
		var ledgerTable models.Table
		if err := lockTx.First(&ledgerTable, candidate.TableID).Error; err != nil {
			return err
		}

		var conflicts int64
		if err := tx.Model(&models.Reservation{}).
			Where("table_id = ? AND date = ? AND status <> ?",
				candidate.TableID, candidate.Date, models.ReservationRejected).
			Where("start_time < ? AND end_time > ?", candidate.EndTime, candidate.StartTime).
			Count(&conflicts).Error; err != nil {
			return err
		}
		if conflicts > 0 {
			return ErrSlotUnavailable
		}

		if err := tx.Create(&reservation).Error; err != nil {
			return err
		}

		// Append window ke ledger meja, skip kalau window identik sudah ada
		slot := models.TimeSlot{
			Date:      candidate.Date,
			StartTime: candidate.StartTime,
			EndTime:   candidate.EndTime,
		}
		if !ledgerTable.TimeSlots.Contains(slot) {
			ledgerTable.TimeSlots = append(ledgerTable.TimeSlots, slot)
			if err := tx.Model(&ledgerTable).Update("time_slots", ledgerTable.TimeSlots).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		if isLockContention(err) {
			return nil, ErrSlotUnavailable
		}
		return nil, err
	}

	utils.InfoLogger.Printf("Reservation %s created: table=%d date=%s %s-%s guests=%d",
		reservation.Code, reservation.TableID, reservation.Date,
		reservation.StartTime, reservation.EndTime, reservation.NumGuests)

	return &reservation, nil
}

// UpdateStatus mengubah status reservasi. Status terminal (accepted/rejected)
// tidak bisa ditinggalkan lagi. Saat reservasi di-reject, ledger meja dibangun
// ulang dari reservasi non-rejected supaya window-nya tidak tampil "booked".
func (s *ReservationScheduler) UpdateStatus(reservationID uint, status string) (*models.Reservation, error) {
	if !models.ValidReservationStatus(status) {
		return nil, ErrInvalidStatus
	}

	var reservation models.Reservation
	if err := s.DB.First(&reservation, reservationID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrReservationNotFound
		}
		return nil, err
	}

	if reservation.Status == status {
		return &reservation, nil
	}
	if reservation.IsTerminal() {
		return nil, ErrInvalidTransition
	}

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		reservation.Status = status
		if err := tx.Save(&reservation).Error; err != nil {
			return err
		}
		if status == models.ReservationRejected {
			return s.rebuildLedger(tx, reservation.TableID)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	utils.InfoLogger.Printf("Reservation %d status changed to %s", reservation.ID, status)
	return &reservation, nil
}

// rebuildLedger menyusun ulang time_slots dari reservasi non-rejected
func (s *ReservationScheduler) rebuildLedger(tx *gorm.DB, tableID uint) error {
	var reservations []models.Reservation
	if err := tx.Where("table_id = ? AND status <> ?", tableID, models.ReservationRejected).
		Order("date, start_time").
		Find(&reservations).Error; err != nil {
		return err
	}

	slots := models.TimeSlotList{}
	for _, r := range reservations {
		slot := models.TimeSlot{Date: r.Date, StartTime: r.StartTime, EndTime: r.EndTime}
		if !slots.Contains(slot) {
			slots = append(slots, slot)
		}
	}

	return tx.Model(&models.Table{}).Where("id = ?", tableID).
		Update("time_slots", slots).Error
}

// CheckAvailability -> pure read untuk pre-flight check dari UI
func (s *ReservationScheduler) CheckAvailability(tableID uint, date, startTime, endTime string) (bool, error) {
	if _, err := time.Parse(dateLayout, date); err != nil {
		return false, ErrInvalidDate
	}
	if _, err := time.Parse(timeLayout, startTime); err != nil {
		return false, ErrInvalidTime
	}
	if _, err := time.Parse(timeLayout, endTime); err != nil {
		return false, ErrInvalidTime
	}
	if startTime >= endTime {
		return false, ErrInvalidInterval
	}

	var table models.Table
	if err := s.DB.First(&table, tableID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, ErrTableNotFound
		}
		return false, err
	}

	var conflicts int64
	if err := s.DB.Model(&models.Reservation{}).
		Where("table_id = ? AND date = ? AND status <> ?", tableID, date, models.ReservationRejected).
		Where("start_time < ? AND end_time > ?", endTime, startTime).
		Count(&conflicts).Error; err != nil {
		return false, err
	}

	return conflicts == 0, nil
}

// GetByID mengambil satu reservasi
func (s *ReservationScheduler) GetByID(reservationID uint) (*models.Reservation, error) {
	var reservation models.Reservation
	if err := s.DB.First(&reservation, reservationID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrReservationNotFound
		}
		return nil, err
	}
	return &reservation, nil
}

// ListForTable -> semua reservasi sebuah meja, opsional difilter tanggal
func (s *ReservationScheduler) ListForTable(tableID uint, date string) ([]models.Reservation, error) {
	query := s.DB.Where("table_id = ?", tableID)
	if date != "" {
		query = query.Where("date = ?", date)
	}

	var reservations []models.Reservation
	if err := query.Order("date, start_time").Find(&reservations).Error; err != nil {
		return nil, err
	}
	return reservations, nil
}

// ListForRestaurant -> semua reservasi sebuah restoran
func (s *ReservationScheduler) ListForRestaurant(restaurantID uint) ([]models.Reservation, error) {
	var reservations []models.Reservation
	if err := s.DB.Where("restaurant_id = ?", restaurantID).
		Order("date, start_time").
		Find(&reservations).Error; err != nil {
		return nil, err
	}
	return reservations, nil
}

// ListForCustomer -> semua reservasi milik seorang customer
func (s *ReservationScheduler) ListForCustomer(customerID uint) ([]models.Reservation, error) {
	var reservations []models.Reservation
	if err := s.DB.Where("customer_id = ?", customerID).
		Order("date, start_time").
		Find(&reservations).Error; err != nil {
		return nil, err
	}
	return reservations, nil
}
