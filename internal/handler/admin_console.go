package handler

// adminConsoleHTML is the static admin console. It talks to the /api/admin
// endpoints with the Admin-Key header typed in by the operator.
const adminConsoleHTML = `<!DOCTYPE html>
<html>
<head>
    <title>Diary Admin</title>
    <meta charset="UTF-8">
    <style>
        body { font-family: Arial, sans-serif; margin: 20px; }
        .container { max-width: 1200px; margin: 0 auto; }
        .header { background: #007bff; color: white; padding: 20px; border-radius: 8px; }
        .stats { display: flex; gap: 20px; margin: 20px 0; }
        .stat-card { background: #f8f9fa; padding: 20px; border-radius: 8px; flex: 1; }
        .section { margin: 20px 0; padding: 20px; border: 1px solid #ddd; border-radius: 8px; }
        button { background: #007bff; color: white; border: none; padding: 10px 20px; border-radius: 4px; cursor: pointer; }
        button:hover { background: #0056b3; }
        .list { max-height: 400px; overflow-y: auto; }
        .item { padding: 10px; border-bottom: 1px solid #eee; }
    </style>
</head>
<body>
    <div class="container">
        <div class="header">
            <h1>Diary Admin Console</h1>
        </div>

        <div class="section">
            <h3>Authentication</h3>
            <input type="password" id="adminKey" placeholder="Admin key" style="width: 300px; padding: 8px;">
            <button onclick="authenticate()">Sign in</button>
        </div>

        <div id="adminPanel" style="display: none;">
            <div class="stats">
                <div class="stat-card"><h3>Total users</h3><h2 id="totalUsers">-</h2></div>
                <div class="stat-card"><h3>Total diaries</h3><h2 id="totalDiaries">-</h2></div>
                <div class="stat-card"><h3>Today</h3><h2 id="todayDiaries">-</h2></div>
            </div>

            <div class="section">
                <h3>Users</h3>
                <button onclick="loadUsers()">Load users</button>
                <div id="usersList" class="list"></div>
            </div>

            <div class="section">
                <h3>Recent diaries</h3>
                <button onclick="loadDiaries()">Load diaries</button>
                <div id="diariesList" class="list"></div>
            </div>
        </div>
    </div>

    <script>
        let adminKey = '';

        function authenticate() {
            adminKey = document.getElementById('adminKey').value;
            if (adminKey) {
                document.getElementById('adminPanel').style.display = 'block';
                loadDashboard();
            }
        }

        async function loadDashboard() {
            const response = await fetch('/api/admin/dashboard', { headers: { 'Admin-Key': adminKey } });
            const body = await response.json();
            if (body.success) {
                document.getElementById('totalUsers').textContent = body.data.totalUsers;
                document.getElementById('totalDiaries').textContent = body.data.totalDiaries;
                document.getElementById('todayDiaries').textContent = body.data.todayDiaries;
            } else {
                alert('Authentication failed: ' + body.message);
            }
        }

        async function loadUsers() {
            const response = await fetch('/api/admin/users', { headers: { 'Admin-Key': adminKey } });
            const body = await response.json();
            if (body.success) {
                document.getElementById('usersList').innerHTML = body.data.map(user =>
                    '<div class="item"><strong>' + user.username + '</strong> (' + user.email + ')<br>' +
                    '<small>Joined: ' + new Date(user.createdAt).toLocaleString() + '</small></div>'
                ).join('');
            }
        }

        async function loadDiaries() {
            const response = await fetch('/api/admin/diaries', { headers: { 'Admin-Key': adminKey } });
            const body = await response.json();
            if (body.success) {
                document.getElementById('diariesList').innerHTML = body.data.map(diary =>
                    '<div class="item"><strong>' + diary.title + '</strong><br>' +
                    '<small>By: ' + diary.username + ' | ' + new Date(diary.createdAt).toLocaleString() + '</small><br>' +
                    '<em>' + diary.content.substring(0, 100) + '...</em></div>'
                ).join('');
            }
        }
    </script>
</body>
</html>
`
