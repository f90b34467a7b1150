package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"

	"pet-kata/internal/domain/people"
)

const uniqueViolation = "23505"

type PeopleRepo struct {
	db *sql.DB
}

func NewPeopleRepo(db *sql.DB) *PeopleRepo {
	return &PeopleRepo{db: db}
}

// Create inserta la persona y sus mascotas en una sola transacción.
func (r *PeopleRepo) Create(ctx context.Context, p people.Person) error {
	return r.CreateAll(ctx, []people.Person{p})
}

// CreateAll inserta todas las personas en una única transacción.
func (r *PeopleRepo) CreateAll(ctx context.Context, items []people.Person) (err error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	for _, p := range items {
		if err = insertPerson(ctx, tx, p); err != nil {
			return err
		}
	}
	return tx.Commit()
}

func insertPerson(ctx context.Context, tx *sql.Tx, p people.Person) error {
	if _, err := tx.ExecContext(ctx, `
		INSERT INTO people (id, first_name, last_name)
		VALUES ($1,$2,$3)
	`, p.ID, p.FirstName, p.LastName); err != nil {
		if isUniqueViolation(err) {
			return people.ErrExists
		}
		return err
	}

	for _, pet := range p.Pets {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO pets (id, person_id, name, type, age)
			VALUES ($1,$2,$3,$4,$5)
		`, pet.ID, p.ID, pet.Name, string(pet.Type), pet.Age); err != nil {
			return fmt.Errorf("insert pet %q: %w", pet.Name, err)
		}
	}
	return nil
}

func (r *PeopleRepo) List(ctx context.Context) ([]people.Person, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, first_name, last_name
		FROM people
		ORDER BY position ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]people.Person, 0)
	index := map[string]int{}
	for rows.Next() {
		var p people.Person
		if err := rows.Scan(&p.ID, &p.FirstName, &p.LastName); err != nil {
			return nil, err
		}
		p.Pets = []people.Pet{}
		index[p.ID] = len(out)
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	pets, err := r.db.QueryContext(ctx, `
		SELECT person_id, id, name, type, age
		FROM pets
		ORDER BY position ASC
	`)
	if err != nil {
		return nil, err
	}
	defer pets.Close()

	for pets.Next() {
		var personID string
		pet, err := scanPet(pets, &personID)
		if err != nil {
			return nil, err
		}
		i, ok := index[personID]
		if !ok {
			continue
		}
		out[i].Pets = append(out[i].Pets, pet)
	}

	return out, pets.Err()
}

func (r *PeopleRepo) GetByName(ctx context.Context, fullName string) (people.Person, error) {
	fullName = strings.TrimSpace(fullName)
	if fullName == "" {
		return people.Person{}, people.ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, `
		SELECT id, first_name, last_name
		FROM people
		WHERE first_name || ' ' || last_name = $1
		ORDER BY position ASC
		LIMIT 1
	`, fullName)

	var p people.Person
	if err := row.Scan(&p.ID, &p.FirstName, &p.LastName); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return people.Person{}, people.ErrNotFound
		}
		return people.Person{}, err
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT person_id, id, name, type, age
		FROM pets
		WHERE person_id = $1
		ORDER BY position ASC
	`, p.ID)
	if err != nil {
		return people.Person{}, err
	}
	defer rows.Close()

	p.Pets = []people.Pet{}
	for rows.Next() {
		var personID string
		pet, err := scanPet(rows, &personID)
		if err != nil {
			return people.Person{}, err
		}
		p.Pets = append(p.Pets, pet)
	}

	return p, rows.Err()
}

func scanPet(rows *sql.Rows, personID *string) (people.Pet, error) {
	var pet people.Pet
	var typ string
	if err := rows.Scan(personID, &pet.ID, &pet.Name, &typ, &pet.Age); err != nil {
		return people.Pet{}, err
	}
	t, err := people.ParsePetType(typ)
	if err != nil {
		return people.Pet{}, err
	}
	pet.Type = t
	return pet, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}
