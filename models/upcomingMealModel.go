package models

// UpcomingMeal is a staging entity for a meal not yet published to the
// general catalog. It carries the same document shape as Meal, including
// its own like counter; promotion moves the document into the meals
// collection under the same id.
type UpcomingMeal = Meal
