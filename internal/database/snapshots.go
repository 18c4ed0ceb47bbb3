package database

import (
	"engsoc.net/eweek/internal/types"
)

// Each store replaces the whole snapshot in one transaction. The tables only
// ever hold the latest poll result, so there is nothing to merge.

func (d *DatabaseInst) StoreEvents(all []types.EventRecord) error {
	d.dbLock.Lock()
	defer d.dbLock.Unlock()

	tx, err := d.db.Begin()
	if err != nil {
		return err
	}

	_, err = tx.Exec("DELETE FROM event")
	if err != nil {
		tx.Rollback()
		return err
	}

	for _, ev := range all {
		_, err = tx.Exec(`INSERT INTO event
			(id, title, date, time, location, type, status, registration_open,
			 winners, first_runner_up, second_runner_up, third_runner_up,
			 max_teams_per_batch, max_players_per_batch, players_per_team)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?);`,
			ev.Id, ev.Title, ev.Date, ev.Time, ev.Location, ev.Type, ev.Status, ev.RegistrationOpen,
			ev.Winners, ev.FirstRunnerUp, ev.SecondRunnerUp, ev.ThirdRunnerUp,
			ev.MaxTeamsPerBatch, ev.MaxPlayersPerBatch, ev.PlayersPerTeam)
		if err != nil {
			tx.Rollback()
			return err
		}
	}

	return tx.Commit()
}

func (d *DatabaseInst) GetEvents() ([]types.EventRecord, error) {
	d.dbLock.Lock()
	defer d.dbLock.Unlock()

	rows, err := d.db.Query(`SELECT id, title, date, time, location, type, status, registration_open,
		winners, first_runner_up, second_runner_up, third_runner_up,
		max_teams_per_batch, max_players_per_batch, players_per_team
		FROM event`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	all := []types.EventRecord{}
	for rows.Next() {
		ev := types.EventRecord{}
		err = rows.Scan(&ev.Id, &ev.Title, &ev.Date, &ev.Time, &ev.Location, &ev.Type, &ev.Status, &ev.RegistrationOpen,
			&ev.Winners, &ev.FirstRunnerUp, &ev.SecondRunnerUp, &ev.ThirdRunnerUp,
			&ev.MaxTeamsPerBatch, &ev.MaxPlayersPerBatch, &ev.PlayersPerTeam)
		if err != nil {
			return nil, err
		}
		all = append(all, ev)
	}

	return all, nil
}

func (d *DatabaseInst) StoreLeaderboard(ranking []types.LeaderboardRow) error {
	d.dbLock.Lock()
	defer d.dbLock.Unlock()

	tx, err := d.db.Begin()
	if err != nil {
		return err
	}

	_, err = tx.Exec("DELETE FROM leaderboard_row")
	if err != nil {
		tx.Rollback()
		return err
	}

	for _, row := range ranking {
		_, err = tx.Exec(`INSERT INTO leaderboard_row (batch, points, position, events, wins)
			VALUES (?, ?, ?, ?, ?);`,
			row.Batch, row.Points, row.Position, row.Events, row.Wins)
		if err != nil {
			tx.Rollback()
			return err
		}
	}

	return tx.Commit()
}

func (d *DatabaseInst) GetLeaderboard() ([]types.LeaderboardRow, error) {
	d.dbLock.Lock()
	defer d.dbLock.Unlock()

	rows, err := d.db.Query("SELECT batch, points, position, events, wins FROM leaderboard_row ORDER BY position")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	ranking := []types.LeaderboardRow{}
	for rows.Next() {
		row := types.LeaderboardRow{}
		err = rows.Scan(&row.Batch, &row.Points, &row.Position, &row.Events, &row.Wins)
		if err != nil {
			return nil, err
		}
		ranking = append(ranking, row)
	}

	return ranking, nil
}
