package booking

// NextQueueNumber returns max+1 over every number already handed out for the day,
// cancelled bookings included, so numbers are never reused.
func NextQueueNumber(taken []QueueNumber) QueueNumber {
	var highest QueueNumber
	for _, q := range taken {
		if q > highest {
			highest = q
		}
	}
	return highest + 1
}
