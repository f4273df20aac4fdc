package repository

import (
	reservationRepo "management/database/repository/reservation"
)

// Re-export the ReservationQueryRepository interface, its options and constructors.
type ReservationQueryRepository = reservationRepo.ReservationQueryRepository

type ReservationQueryOptions = reservationRepo.Options

var NewMongoReservationQueryRepo = reservationRepo.NewMongoReservationQueryRepo

var NewInMemoryReservationQueryRepo = reservationRepo.NewInMemoryReservationQueryRepo

// Error kinds reported by every ReservationQueryRepository.
var (
	ErrStoreUnavailable = reservationRepo.ErrStoreUnavailable
	ErrQuery            = reservationRepo.ErrQuery
)
