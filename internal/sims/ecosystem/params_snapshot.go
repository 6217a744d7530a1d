package ecosystem

import "wildgrid/internal/core"

// Parameters reports the configuration and the fixed rule constants.
func (w *World) Parameters() core.ParameterSnapshot {
	groups := []core.ParameterGroup{
		{
			Name: "World",
			Params: []core.Parameter{
				core.IntParam("w", "Width", int64(w.cfg.Width)),
				core.IntParam("h", "Height", int64(w.cfg.Height)),
				core.IntParam("seed", "Seed", w.cfg.Seed),
				core.FloatParam("tick_unit", "Tick unit (years)", w.cfg.TickUnit),
			},
		},
		{
			Name:    "Terrain",
			Summary: "rates per year, scaled by the tick unit",
			Params: []core.Parameter{
				core.IntParam("erosion_radius", "Water erosion radius", erosionRadius),
				core.FloatParam("grass_spread", "Grass spread", grassSpreadRate),
				core.FloatParam("grass_spread_water", "Grass spread near water", grassSpreadWaterRate),
				core.IntParam("rock_breakdown_trees", "Trees to crack rock", rockBreakdownTrees),
				core.FloatParam("rock_breakdown_years", "Years to crack rock", rockBreakdownYears),
				core.FloatParam("dirt_consolidation", "Dirt to rock", dirtConsolidationRate),
				core.FloatParam("meander", "River meander", meanderRate),
			},
		},
		{
			Name: "Plants",
			Params: []core.Parameter{
				core.FloatParam("sprout", "Sprout", sproutRate),
				core.FloatParam("sapling_age", "Sapling age", treeSaplingAge),
				core.FloatParam("mature_age", "Mature age", treeMatureAge),
				core.FloatParam("vine_death_exposure", "Vine exposure to kill", vineDeathExposure),
				core.FloatParam("dead_decay", "Dead tree decay", deadTreeDecayYears),
				core.FloatParam("bloom_age", "Flower bloom age", flowerBloomAge),
				core.FloatParam("bees", "Bees timer", meadowBeesYears),
				core.FloatParam("meadow_spread", "Meadow spread", meadowSpreadRate),
				core.FloatParam("meadow_reclaim", "Meadow reclaim", meadowReclaimRate),
				core.FloatParam("sapling_overtake", "Sapling overtaken", saplingOvertakeRate),
			},
		},
		{
			Name: "Vines",
			Params: []core.Parameter{
				core.FloatParam("vine_spawn", "Vine spawn", vineSpawnRate),
				core.FloatParam("vine_tree_removal", "Vine removal on trees", vineTreeRemovalRate),
				core.FloatParam("vine_spread_age", "Vine spread age", vineSpreadAge),
				core.FloatParam("vine_spread", "Vine spread", vineSpreadRate),
				core.FloatParam("vine_meadow_removal", "Vine removal on meadows", vineMeadowRemoveRate),
			},
		},
		{
			Name: "Fire",
			Params: []core.Parameter{
				core.FloatParam("fire_mature", "Mature tree ignition", fireMatureIgniteRate),
				core.FloatParam("fire_meadow", "Meadow ignition", fireMeadowIgniteRate),
				core.FloatParam("fire_vine", "Vine ignition", fireVineIgniteRate),
				core.FloatParam("fire_burn_years", "Burn duration", fireBurnYears),
			},
		},
	}
	return core.ParameterSnapshot{Groups: groups}
}
