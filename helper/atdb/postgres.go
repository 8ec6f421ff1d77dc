package atdb

import (
	"database/sql"
	"fmt"
	"reflect"
)

func InsertOne(db *sql.DB, query string, args ...interface{}) (int64, error) {
	var lastInsertID int64
	err := db.QueryRow(query, args...).Scan(&lastInsertID)
	if err != nil {
		return 0, fmt.Errorf("failed to insert record: %v", err)
	}
	return lastInsertID, nil
}

func GetOne[T any](db *sql.DB, query string, args ...interface{}) (T, error) {
	var result T
	row := db.QueryRow(query, args...)

	// Refleksi untuk memetakan hasil query ke struct
	resultValue := reflect.ValueOf(&result).Elem()
	if resultValue.Kind() == reflect.Struct {
		numFields := resultValue.NumField()
		pointers := make([]interface{}, numFields)
		for i := 0; i < numFields; i++ {
			pointers[i] = resultValue.Field(i).Addr().Interface()
		}

		err := row.Scan(pointers...)
		if err != nil {
			return result, fmt.Errorf("failed to fetch record: %v", err)
		}
	} else {
		err := row.Scan(&result)
		if err != nil {
			return result, fmt.Errorf("failed to fetch record: %v", err)
		}
	}

	return result, nil
}

func UpdateOne(db *sql.DB, query string, args ...interface{}) (int64, error) {
	res, err := db.Exec(query, args...)
	if err != nil {
		return 0, fmt.Errorf("failed to update record: %v", err)
	}

	rowsAffected, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get affected rows count: %v", err)
	}

	return rowsAffected, nil
}

func GetCount(db *sql.DB, query string, args ...interface{}) (int64, error) {
	var count int64
	err := db.QueryRow(query, args...).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to get count: %v", err)
	}

	return count, nil
}
