package worldgen

import (
	"github.com/talgya/touchline/internal/rng"
)

var firstNames = []string{
	"Marco", "Luka", "Jude", "Rafael", "Emile", "Thiago", "Jan", "Pedro",
	"Nikola", "Andres", "Timo", "Bruno", "Sven", "Mateo", "Kieran", "Dario",
	"Felix", "Joao", "Marius", "Santi", "Ruben", "Casper", "Ilkay", "Tomas",
}

var lastNames = []string{
	"Ferreira", "Kovac", "Hartley", "Moreau", "Silva", "Janssen", "Weber",
	"Rossi", "Petrov", "Navarro", "Lindqvist", "Costa", "Bakker", "Varga",
	"Dunne", "Moretti", "Schneider", "Almeida", "Novak", "Iglesias",
}

var clubPrefixes = []string{
	"FC", "Real", "Athletic", "Sporting", "United", "Dynamo", "Inter", "AC",
}

var clubStems = []string{
	"Northbridge", "Vallecano", "Monteverde", "Eisenstadt", "Riverport",
	"Santa Clara", "Oldfield", "Westmere", "Lindenhof", "Porto Alto",
	"Kestrel Park", "Blackmoor", "Villanova", "Steinbach", "Harborview",
}

func playerName(r *rng.Source) string {
	return rng.Pick(r, firstNames) + " " + rng.Pick(r, lastNames)
}

func clubName(r *rng.Source) string {
	return rng.Pick(r, clubPrefixes) + " " + rng.Pick(r, clubStems)
}
