package catalog

import "ecoquest/models"

// defaultMissions is the master list of all possible missions.
var defaultMissions = []models.Mission{
	{ID: 1, Title: "Reusable Bottle", Description: "Photo using reusable bottle", Points: 20},
	{ID: 2, Title: "Public Transport", Description: "Photo using public transport", Points: 20},
	{ID: 3, Title: "Vegetarian Meal", Description: "Photo of vegetarian meal", Points: 20},
	{ID: 4, Title: "Recycling", Description: "Photo of proper recycling", Points: 20},
	{ID: 5, Title: "Bike Ride", Description: "Photo while cycling for commute", Points: 25},
	{ID: 6, Title: "Eco Bag", Description: "Photo using eco-friendly shopping bag", Points: 15},
	{ID: 7, Title: "Pick Up Trash", Description: "Photo picking up trash in public area", Points: 30},
	{ID: 8, Title: "Composting", Description: "Photo of home composting bin", Points: 25},
	{ID: 9, Title: "Plant a Tree", Description: "Photo while planting a tree", Points: 40},
	{ID: 10, Title: "Thrift Shopping", Description: "Photo from a second-hand/thrift store", Points: 20},
	{ID: 11, Title: "No Plastic", Description: "Photo of a plastic-free meal or drink", Points: 20},
	{ID: 12, Title: "Community Garden", Description: "Photo participating in a community garden", Points: 30},
	{ID: 13, Title: "Refill Station", Description: "Photo refilling bottle at public refill station", Points: 20},
	{ID: 14, Title: "DIY Item", Description: "Photo of a handmade upcycled item", Points: 25},
	{ID: 15, Title: "Outdoor Yoga", Description: "Photo doing yoga outside", Points: 15},
	{ID: 16, Title: "Use Natural Light", Description: "Photo of working/studying without artificial light", Points: 15},
	{ID: 17, Title: "Read Outdoors", Description: "Photo reading a book outdoors", Points: 15},
	{ID: 18, Title: "Walk Instead of Ride", Description: "Photo walking to destination instead of using vehicle", Points: 20},
	{ID: 19, Title: "Local Market Visit", Description: "Photo at local farmer's market", Points: 20},
	{ID: 20, Title: "Zero Waste Lunch", Description: "Photo of lunch with no packaging waste", Points: 25},
	{ID: 21, Title: "Eco Cleaning", Description: "Photo using natural/eco cleaning product", Points: 15},
	{ID: 22, Title: "Natural Scenery", Description: "Photo of favorite green spot near your location", Points: 10},
	{ID: 23, Title: "Rainy Day Plant Care", Description: "Photo of watering plants using rainwater", Points: 25},
	{ID: 24, Title: "Home Gardening", Description: "Photo of your indoor or balcony garden", Points: 20},
	{ID: 25, Title: "Solar Panel Sighting", Description: "Photo of any solar panel in use", Points: 30},
}
